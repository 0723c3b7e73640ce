package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"officeit/internal/models"
)

// FieldErrors maps a field name to a human readable message. A field without
// an entry is valid.
type FieldErrors map[string]string

// ProductInput is a product as submitted by the admin create and edit forms.
type ProductInput struct {
	Name         string       `json:"name" validate:"notblank"`
	Price        Amount       `json:"price" validate:"amount_gt0"`
	Discount     Amount       `json:"discount"`
	Category     string       `json:"category" validate:"notblank"`
	Image        string       `json:"image" validate:"notblank"`
	Description  string       `json:"description" validate:"notblank"`
	Availability string       `json:"availability" validate:"omitempty,oneof='In Stock' 'Out of Stock'"`
	Featured     *bool        `json:"featured"` // nil keeps the stored flag
	Specs        models.Specs `json:"specs" validate:"has_spec"`
}

// ProductInputFrom builds the form representation of a stored product.
func ProductInputFrom(p models.Product) ProductInput {
	featured := p.Featured
	return ProductInput{
		Name:         p.Name,
		Price:        AmountOf(p.Price),
		Discount:     AmountOf(p.Discount),
		Category:     p.Category,
		Image:        p.Image,
		Description:  p.Description,
		Availability: p.Availability,
		Featured:     &featured,
		Specs:        p.SpecMap(),
	}
}

// CleanSpecs drops entries whose key or value is blank and trims the rest.
func CleanSpecs(specs models.Specs) models.Specs {
	out := make(models.Specs, len(specs))
	for k, v := range specs {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k != "" && v != "" {
			out[k] = v
		}
	}
	return out
}

// CategoryExistsMessage is returned by ValidateCategoryName for a name that
// is already taken.
const CategoryExistsMessage = "Category name already exists"

type categoryInput struct {
	Name string `json:"name" validate:"notblank,trimmin=2,trimmax=50"`
}

type subscriptionInput struct {
	Email string `json:"email" validate:"notblank,strict_email"`
}

var productMessages = map[string]string{
	"name.notblank":        "Product name is required",
	"price.amount_gt0":     "Valid price is required",
	"category.notblank":    "Category is required",
	"image.notblank":       "Product image is required",
	"description.notblank": "Description is required",
	"discount.amount":      "Discount must be a valid number",
	"discount.gte0":        "Discount cannot be negative",
	"discount.lt_price":    "Discount must be less than price",
	"specs.has_spec":       "At least one specification is required",
	"availability.oneof":   "Availability must be In Stock or Out of Stock",
}

var contactMessages = map[string]string{
	"fullName.notblank":  "Full name is required",
	"fullName.trimmin":   "Name must be at least 2 characters",
	"email.notblank":     "Email address is required",
	"email.strict_email": "Please enter a valid email address",
	"phone.phone10":      "Please enter a valid 10-digit phone number",
	"subject.notblank":   "Subject is required",
	"subject.trimmin":    "Subject must be at least 3 characters",
	"message.notblank":   "Message is required",
	"message.trimmin":    "Message must be at least 10 characters",
}

var categoryMessages = map[string]string{
	"name.notblank": "Category name is required",
	"name.trimmin":  "Category name must be at least 2 characters",
	"name.trimmax":  "Category name must be less than 50 characters",
}

var subscriptionMessages = map[string]string{
	"email.notblank":     "Email address is required",
	"email.strict_email": "Please enter a valid email address",
}

// Validator applies the catalog rules. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the catalog rules registered.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on empty tags or nil funcs.
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("trimmin", trimMin)
	_ = v.RegisterValidation("trimmax", trimMax)
	_ = v.RegisterValidation("strict_email", strictEmail)
	_ = v.RegisterValidation("phone10", phone10, true)
	_ = v.RegisterValidation("amount_gt0", amountGreaterThanZero)
	_ = v.RegisterValidation("has_spec", hasSpec, true)
	v.RegisterStructValidation(discountRule, ProductInput{})

	return &Validator{validate: v}
}

// ValidateProduct checks a product submission.
func (v *Validator) ValidateProduct(in ProductInput) FieldErrors {
	return translate(v.validate.Struct(in), productMessages)
}

// ValidateContact checks a contact form submission.
func (v *Validator) ValidateContact(msg models.ContactMessage) FieldErrors {
	return translate(v.validate.Struct(msg), contactMessages)
}

// ValidateCategoryName checks a category name against the length rules and
// against existing categories, ignoring the one with excludeID. It returns
// an empty string when the name is acceptable.
func (v *Validator) ValidateCategoryName(name string, existing []models.Category, excludeID string) string {
	if errs := translate(v.validate.Struct(categoryInput{Name: name}), categoryMessages); len(errs) > 0 {
		return errs["name"]
	}
	trimmed := strings.TrimSpace(name)
	for _, c := range existing {
		if c.ID != excludeID && strings.EqualFold(c.Name, trimmed) {
			return CategoryExistsMessage
		}
	}
	return ""
}

// ValidateSubscription checks a newsletter sign-up email.
func (v *Validator) ValidateSubscription(email string) FieldErrors {
	return translate(v.validate.Struct(subscriptionInput{Email: email}), subscriptionMessages)
}

func translate(err error, messages map[string]string) FieldErrors {
	errs := FieldErrors{}
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_"] = err.Error()
		return errs
	}
	for _, e := range verrs {
		if _, seen := errs[e.Field()]; seen {
			continue
		}
		if msg, ok := messages[e.Field()+"."+e.Tag()]; ok {
			errs[e.Field()] = msg
			continue
		}
		errs[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return errs
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func trimmedLength(fl validator.FieldLevel) (int, int, bool) {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return 0, 0, false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())), limit, true
}

func trimMin(fl validator.FieldLevel) bool {
	n, limit, ok := trimmedLength(fl)
	return ok && n >= limit
}

func trimMax(fl validator.FieldLevel) bool {
	n, limit, ok := trimmedLength(fl)
	return ok && n <= limit
}

func strictEmail(fl validator.FieldLevel) bool {
	return ValidateEmail(strings.TrimSpace(fl.Field().String()))
}

// phone10 accepts a blank value; the phone number is optional.
func phone10(fl validator.FieldLevel) bool {
	phone := strings.TrimSpace(fl.Field().String())
	return phone == "" || ValidatePhone(phone)
}

func amountGreaterThanZero(fl validator.FieldLevel) bool {
	d, ok := Amount(fl.Field().String()).Decimal()
	return ok && d.IsPositive()
}

func hasSpec(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Map {
		return false
	}
	iter := field.MapRange()
	for iter.Next() {
		if strings.TrimSpace(iter.Key().String()) != "" && strings.TrimSpace(iter.Value().String()) != "" {
			return true
		}
	}
	return false
}

// discountRule holds a non-zero discount to the range (0, price).
func discountRule(sl validator.StructLevel) {
	in := sl.Current().Interface().(ProductInput)
	if !in.Discount.IsSet() {
		return
	}
	discount, ok := in.Discount.Decimal()
	if !ok {
		sl.ReportError(in.Discount, "discount", "Discount", "amount", "")
		return
	}
	if discount.IsZero() {
		return
	}
	if price, ok := in.Price.Decimal(); ok && discount.GreaterThanOrEqual(price) {
		sl.ReportError(in.Discount, "discount", "Discount", "lt_price", "")
		return
	}
	if discount.IsNegative() {
		sl.ReportError(in.Discount, "discount", "Discount", "gte0", "")
	}
}

var (
	defaultValidator     *Validator
	defaultValidatorOnce sync.Once
)

func shared() *Validator {
	defaultValidatorOnce.Do(func() {
		defaultValidator = NewValidator()
	})
	return defaultValidator
}

// ValidateProduct checks a product submission with the shared validator.
func ValidateProduct(in ProductInput) FieldErrors {
	return shared().ValidateProduct(in)
}

// ValidateContact checks a contact message with the shared validator.
func ValidateContact(msg models.ContactMessage) FieldErrors {
	return shared().ValidateContact(msg)
}

// ValidateCategoryName checks a category name with the shared validator.
func ValidateCategoryName(name string, existing []models.Category, excludeID string) string {
	return shared().ValidateCategoryName(name, existing, excludeID)
}

// ValidateSubscription checks a newsletter email with the shared validator.
func ValidateSubscription(email string) FieldErrors {
	return shared().ValidateSubscription(email)
}
