package validators

import (
	"net/http"
	"net/url"
	"reflect"
	"strings"

	pkgerrors "github.com/farshadmz/storefront-backend/pkg/errors"
)

// DecodeSubmission accepts either a JSON body or a classic urlencoded form
// post. The storefront's own pages submit forms; API clients send JSON.
func DecodeSubmission(r *http.Request, dest any) error {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data") {
		return decodeFormBody(r, dest)
	}
	return DecodeJSONBody(r, dest)
}

// decodeFormBody fills dest's string fields from form values keyed by json
// tag. Only flat string structs are supported, which covers every form the
// storefront exposes.
func decodeFormBody(r *http.Request, dest any) error {
	if err := r.ParseForm(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body")
	}

	populateFromValues(r.PostForm, dest)

	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func populateFromValues(values url.Values, dest any) {
	v := reflect.ValueOf(dest).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() != reflect.String || !field.CanSet() {
			continue
		}
		tag := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			continue
		}
		if raw, ok := values[tag]; ok && len(raw) > 0 {
			field.SetString(raw[0])
		}
	}
}
