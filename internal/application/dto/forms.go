// Package dto define los formularios que llegan de las vistas y su
// validación. La validación ocurre siempre antes de cualquier llamada de red;
// un formulario inválido nunca llega ni al backend ni al store.
package dto

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// SKU: letras, números y guiones (se normaliza a mayúsculas aparte).
	_ = v.RegisterValidation("sku", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			default:
				return false
			}
		}
		return true
	})
	return v
}

// ValidationError fallo de validación con mensajes por campo.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validación: " + strings.Join(parts, "; ")
}

// ProductForm datos del formulario de alta/edición de producto.
type ProductForm struct {
	Title       string  `json:"title" validate:"required,min=2,max=100"`
	SKU         string  `json:"sku" validate:"required,min=3,sku"`
	Description string  `json:"description" validate:"max=500"`
	Image       string  `json:"image" validate:"omitempty,url"`
	Price       float64 `json:"price" validate:"required,gt=0,lte=999999"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// Normalize recorta espacios y pasa el SKU a mayúsculas, como hace el
// formulario antes de enviar.
func (f *ProductForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.SKU = strings.ToUpper(strings.TrimSpace(f.SKU))
	f.Description = strings.TrimSpace(f.Description)
	f.Image = strings.TrimSpace(f.Image)
}

// Validate devuelve *ValidationError con mensajes por campo, o nil.
func (f *ProductForm) Validate() error {
	f.Normalize()
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := map[string]string{}
	for _, e := range verrs {
		fields[strings.ToLower(e.Field())] = productFieldMessage(e)
	}
	return &ValidationError{Fields: fields}
}

func productFieldMessage(e validator.FieldError) string {
	switch e.Field() {
	case "Title":
		switch e.Tag() {
		case "required":
			return "el título del producto es obligatorio"
		case "min":
			return "el título debe tener al menos 2 caracteres"
		default:
			return "el título debe tener menos de 100 caracteres"
		}
	case "SKU":
		switch e.Tag() {
		case "required":
			return "el SKU es obligatorio"
		case "min":
			return "el SKU debe tener al menos 3 caracteres"
		default:
			return "el SKU solo admite letras, números y guiones"
		}
	case "Description":
		return "la descripción debe tener menos de 500 caracteres"
	case "Image":
		return "la URL de la imagen no es válida"
	case "Price":
		switch e.Tag() {
		case "required", "gt":
			return "el precio debe ser mayor que 0"
		default:
			return "el precio no puede superar 999999"
		}
	case "Stock":
		return "el stock no puede ser negativo"
	default:
		return "valor inválido"
	}
}

// ToEntity construye el borrador de entidad ya validado.
func (f ProductForm) ToEntity() entity.Product {
	return entity.Product{
		Title:       f.Title,
		SKU:         f.SKU,
		Description: f.Description,
		Image:       f.Image,
		Price:       decimal.NewFromFloat(f.Price),
		Stock:       f.Stock,
	}
}

// AdjustmentForm datos del formulario de ajuste. ProductID solo se exige en
// el alta; en la revisión la transacción ya está ligada a su producto.
type AdjustmentForm struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// Validate valida el formulario. Qty cero es inválido siempre (el cero no
// distingue entrada de salida); forCreate exige además el producto.
func (f *AdjustmentForm) Validate(forCreate bool) error {
	fields := map[string]string{}
	if forCreate && strings.TrimSpace(f.ProductID) == "" {
		fields["product_id"] = "el producto es obligatorio"
	}
	if f.Qty == 0 {
		fields["qty"] = "la cantidad debe ser un número distinto de cero"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
