// Package validate decodes content API payloads and checks them against the
// shape each resource must have before anything is rendered from them.
package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/DjordjeVuckovic/brainfeed/internal/apperr"
	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report payload field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate checks payload against schema and returns domain.Articles,
// domain.Single or domain.Categories.
func (v *Validator) Validate(schema Schema, payload []byte) (any, error) {
	switch schema {
	case ArticleList:
		return v.Articles(payload)
	case ArticleItem:
		a, err := v.Article(payload)
		if err != nil {
			return nil, err
		}
		return domain.Single{Article: a}, nil
	case CategoryList:
		return v.Categories(payload)
	default:
		return nil, fmt.Errorf("unknown schema %q", schema)
	}
}

func (v *Validator) Articles(payload []byte) (domain.Articles, error) {
	var wire []wireArticle
	if err := decodeList(payload, &wire, ArticleList); err != nil {
		return nil, err
	}

	out := make(domain.Articles, 0, len(wire))
	ids := make(map[int64]struct{}, len(wire))
	slugs := make(map[string]struct{}, len(wire))
	for i, w := range wire {
		if err := v.check(w, fmt.Sprintf("[%d].", i)); err != nil {
			return nil, err
		}
		a := w.toDomain()
		if _, dup := ids[a.ID]; dup {
			return nil, apperr.NewValidationFields("invalid article list", map[string]string{
				fmt.Sprintf("[%d].id", i): "duplicates " + strconv.FormatInt(a.ID, 10),
			})
		}
		if _, dup := slugs[a.Slug]; dup {
			return nil, apperr.NewValidationFields("invalid article list", map[string]string{
				fmt.Sprintf("[%d].slug", i): "duplicates " + a.Slug,
			})
		}
		ids[a.ID] = struct{}{}
		slugs[a.Slug] = struct{}{}
		out = append(out, a)
	}
	return out, nil
}

func (v *Validator) Article(payload []byte) (domain.Article, error) {
	var wire wireArticle
	if err := decode(payload, &wire, ArticleItem); err != nil {
		return domain.Article{}, err
	}
	if err := v.check(wire, ""); err != nil {
		return domain.Article{}, err
	}
	return wire.toDomain(), nil
}

func (v *Validator) Categories(payload []byte) (domain.Categories, error) {
	var wire []wireCategory
	if err := decodeList(payload, &wire, CategoryList); err != nil {
		return nil, err
	}

	out := make(domain.Categories, 0, len(wire))
	slugs := make(map[string]struct{}, len(wire))
	for i, w := range wire {
		if err := v.check(w, fmt.Sprintf("[%d].", i)); err != nil {
			return nil, err
		}
		if _, dup := slugs[w.Slug]; dup {
			return nil, apperr.NewValidationFields("invalid category list", map[string]string{
				fmt.Sprintf("[%d].slug", i): "duplicates " + w.Slug,
			})
		}
		slugs[w.Slug] = struct{}{}
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (v *Validator) check(item any, prefix string) error {
	err := v.validate.Struct(item)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.NewValidationWrap("invalid payload", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		// Namespace is "wireArticle.category.slug"; drop the root type.
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		fields[prefix+ns] = ruleMessage(fe)
	}
	return apperr.NewValidationFields("invalid payload", fields)
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "slug":
		return "must contain only lowercase letters, numbers and hyphens"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}

func decodeList(payload []byte, dst any, schema Schema) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return apperr.NewValidation(fmt.Sprintf("%s payload must be a JSON array", schema))
	}
	return decode(trimmed, dst, schema)
}

func decode(payload []byte, dst any, schema Schema) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return apperr.NewValidation(fmt.Sprintf("%s payload is empty", schema))
	}

	if err := json.Unmarshal(trimmed, dst); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			field := te.Field
			if field == "" {
				field = "$"
			}
			return &apperr.ValidationError{
				Message: fmt.Sprintf("malformed %s payload", schema),
				Fields:  map[string]string{field: "must be " + te.Type.Kind().String() + ", got " + te.Value},
				Err:     err,
			}
		}
		return apperr.NewValidationWrap(fmt.Sprintf("malformed %s payload", schema), err)
	}
	return nil
}
