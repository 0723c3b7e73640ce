package handlers

import (
	"bytes"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"

	"officeit/internal/catalog"
	"officeit/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	images  *services.ImageService
	export  *services.ExportService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, images *services.ImageService, export *services.ExportService) *ProductHandler {
	return &ProductHandler{
		service: service,
		images:  images,
		export:  export,
	}
}

// RegisterRoutes registers the product routes. admin guards every route that
// changes the catalogue or exposes admin data.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, admin ...fiber.Handler) {
	protect := func(handler fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, admin...), handler)
	}

	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/featured", h.HandleGetFeatured)
	productRoutes.Get("/stats", protect(h.HandleGetStats)...)
	productRoutes.Get("/export", protect(h.HandleExport)...)
	productRoutes.Post("/upload-image", protect(h.HandleUploadImage)...)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", protect(h.HandleCreateProduct)...)
	productRoutes.Put("/:id", protect(h.HandleUpdateProduct)...)
	productRoutes.Patch("/:id/featured", protect(h.HandleToggleFeatured)...)
	productRoutes.Delete("/:id", protect(h.HandleDeleteProduct)...)
}

// HandleGetProducts lists products, filtered and sorted by the query string:
// search, category, minPrice, maxPrice, availability, sort and dir.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	q, fields := parseQuery(c)
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}
	products, err := h.service.ListProducts(q)
	if err != nil {
		return respondError(c, err, "Product", "Could not retrieve products")
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Product", "Could not retrieve product")
	}
	return c.JSON(product)
}

// HandleGetFeatured returns the homepage featured section.
func (h *ProductHandler) HandleGetFeatured(c *fiber.Ctx) error {
	section, err := h.service.FeaturedSection()
	if err != nil {
		return respondError(c, err, "Product", "Could not retrieve featured products")
	}
	return c.JSON(section)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in catalog.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	product, err := h.service.CreateProduct(in)
	if err != nil {
		return respondError(c, err, "Product", "Failed to add product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces the editable fields of a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var in catalog.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}
	product, err := h.service.UpdateProduct(c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "Product", "Failed to update product")
	}
	return c.JSON(product)
}

// HandleToggleFeatured flips the featured flag of a product.
func (h *ProductHandler) HandleToggleFeatured(c *fiber.Ctx) error {
	product, err := h.service.ToggleFeatured(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Product", "Failed to update featured status")
	}
	message := "Product removed from featured section"
	if product.Featured {
		message = "Product added to featured section"
	}
	return c.JSON(fiber.Map{
		"message": message,
		"product": product,
	})
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return respondError(c, err, "Product", "Failed to delete product")
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// HandleGetStats returns the admin dashboard counters.
func (h *ProductHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return respondError(c, err, "Product", "Could not compute statistics")
	}
	return c.JSON(stats)
}

// HandleUploadImage stores the multipart field "image" and returns its URL.
func (h *ProductHandler) HandleUploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Image file is required",
			"error":   err.Error(),
		})
	}
	if file.Size > services.MaxImageSize {
		return imageRejected(c, services.ErrImageTooLarge)
	}
	f, err := file.Open()
	if err != nil {
		return respondError(c, err, "Image", "Failed to upload image")
	}
	defer f.Close()

	url, err := h.images.Store(f)
	if err != nil {
		if errors.Is(err, services.ErrNotAnImage) || errors.Is(err, services.ErrImageTooLarge) {
			return imageRejected(c, err)
		}
		return respondError(c, err, "Image", "Failed to upload image")
	}
	return c.JSON(fiber.Map{"url": url})
}

func imageRejected(c *fiber.Ctx, err error) error {
	message := "Please select an image file"
	if errors.Is(err, services.ErrImageTooLarge) {
		message = "Image size must be less than 5MB"
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"errors":  catalog.FieldErrors{"image": message},
	})
}

// HandleExport downloads the catalogue as csv (default) or xlsx.
func (h *ProductHandler) HandleExport(c *fiber.Ctx) error {
	format := strings.ToLower(c.Query("format", services.FormatCSV))
	var buf bytes.Buffer
	if err := h.export.Export(&buf, format); err != nil {
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Export format must be csv or xlsx",
			})
		}
		return respondError(c, err, "Product", "Failed to export products")
	}
	c.Set(fiber.HeaderContentType, services.ContentType(format))
	c.Attachment("products." + format)
	return c.Send(buf.Bytes())
}

// parseQuery reads the storefront filter and sort parameters.
func parseQuery(c *fiber.Ctx) (catalog.Query, catalog.FieldErrors) {
	fields := catalog.FieldErrors{}
	q := catalog.Query{
		Filter: catalog.Filter{
			Search:   c.Query("search"),
			Category: c.Query("category"),
		},
		SortField: c.Query("sort"),
		Direction: catalog.ParseSortDirection(c.Query("dir")),
	}
	for _, key := range []string{"minPrice", "maxPrice"} {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			continue
		}
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			fields[key] = key + " must be a number"
			continue
		}
		if key == "minPrice" {
			q.MinPrice = &v
		} else {
			q.MaxPrice = &v
		}
	}
	for _, raw := range c.Context().QueryArgs().PeekMulti("availability") {
		for _, a := range strings.Split(string(raw), ",") {
			if a = strings.TrimSpace(a); a != "" {
				q.Availability = append(q.Availability, a)
			}
		}
	}
	if q.SortField != "" && !catalog.SortableField(q.SortField) {
		fields["sort"] = "Unknown sort field " + q.SortField
	}
	return q, fields
}
