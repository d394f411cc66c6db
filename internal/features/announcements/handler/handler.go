package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	ua "github.com/mileusna/useragent"
	"go.uber.org/zap"

	"announcebar/internal/core/logger"
	"announcebar/internal/core/metrics"
	"announcebar/internal/features/announcements/domain"
	"announcebar/internal/features/announcements/ports"
	"announcebar/internal/features/announcements/script"
)

const mimeJavaScript = "text/javascript; charset=utf-8"

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// slugRequest is the validated path parameter of the embed and preview routes.
type slugRequest struct {
	Slug string `validate:"required,max=128,slug"`
}

// EmbedHandler handles HTTP requests for embed scripts and previews.
type EmbedHandler struct {
	service     ports.EmbedService
	cacheMaxAge int
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewEmbedHandler creates a new EmbedHandler. cacheMaxAge is in seconds.
func NewEmbedHandler(service ports.EmbedService, cacheMaxAge int) *EmbedHandler {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return &EmbedHandler{
		service:     service,
		cacheMaxAge: cacheMaxAge,
		validate:    v,
		logger:      logger.Named("embed-handler"),
	}
}

// Register mounts the routes on router.
func (h *EmbedHandler) Register(router fiber.Router) {
	router.Get("/embed/:slug", h.Embed)
	router.Get("/preview/:slug", h.Preview)
}

// Embed handles GET /embed/{slug}[.js].
// @Summary Get the embed script of an announcement bar
// @Description Returns a self-executing script that mounts the bar on the host page. Geo-blocked visitors receive a no-op script with status 200.
// @Tags Embed
// @Produce text/javascript
// @Param slug path string true "Announcement slug, optionally suffixed with .js"
// @Success 200 {string} string "Embed script"
// @Failure 404 {string} string "Unknown or invisible announcement"
// @Failure 500 {string} string "Logging-only script"
// @Router /embed/{slug} [get]
func (h *EmbedHandler) Embed(c *fiber.Ctx) (err error) {
	client := clientClass(c.Get(fiber.HeaderUserAgent))
	slug := strings.TrimSuffix(c.Params("slug"), ".js")

	defer func() {
		if r := recover(); r != nil {
			h.log(c).Error("Panic while generating embed script",
				zap.String("slug", slug),
				zap.Any("panic", r),
			)
			err = h.failure(c, client)
		}
	}()

	if !h.validSlug(slug) {
		return h.notFound(c, client)
	}

	res, err := h.service.Generate(c.Context(), slug, domain.RequestContext{
		IP:        visitorIP(c),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			return h.notFound(c, client)
		}
		h.log(c).Error("Failed to generate embed script", zap.String("slug", slug), zap.Error(err))
		return h.failure(c, client)
	}

	metrics.EmbedRequestsTotal.WithLabelValues(string(res.Outcome), client).Inc()
	c.Set(fiber.HeaderContentType, mimeJavaScript)
	c.Set(fiber.HeaderCacheControl, h.cacheControl(res))
	return c.Status(http.StatusOK).Send(res.Script)
}

// Preview handles GET /preview/{slug}.
// @Summary Preview an announcement bar
// @Description Renders the bar server-side on a blank page at a virtual time after mount. When host or path is given and the embed script would skip that page, the page is rendered without the bar and names the gate in data-gated. Geo targeting is not applied.
// @Tags Embed
// @Produce html
// @Param slug path string true "Announcement slug"
// @Param at query int false "Virtual time after mount in milliseconds"
// @Param host query string false "Host page hostname to check against the allowed domain"
// @Param path query string false "Host page path to check against the page paths"
// @Success 200 {string} string "HTML page"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /preview/{slug} [get]
func (h *EmbedHandler) Preview(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if !h.validSlug(slug) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Announcement not found",
		})
	}

	at, err := parseAt(c.Query("at"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid 'at' parameter. Must be a non-negative number of milliseconds",
		})
	}

	page, err := h.service.Preview(c.Context(), slug, at, domain.PageContext{
		Host: c.Query("host"),
		Path: c.Query("path"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Announcement not found",
			})
		}
		h.log(c).Error("Failed to render preview", zap.String("slug", slug), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(http.StatusOK).Send(page)
}

// log returns the handler logger tagged with the request id set by the requestid middleware.
func (h *EmbedHandler) log(c *fiber.Ctx) *zap.Logger {
	id, _ := c.Locals("requestid").(string)
	return logger.WithRequestID(h.logger, id)
}

func (h *EmbedHandler) validSlug(slug string) bool {
	return h.validate.Struct(slugRequest{Slug: slug}) == nil
}

func (h *EmbedHandler) notFound(c *fiber.Ctx, client string) error {
	metrics.EmbedRequestsTotal.WithLabelValues(metrics.OutcomeNotFound, client).Inc()
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(http.StatusNotFound).Send(nil)
}

func (h *EmbedHandler) failure(c *fiber.Ctx, client string) error {
	metrics.EmbedRequestsTotal.WithLabelValues(metrics.OutcomeError, client).Inc()
	c.Set(fiber.HeaderContentType, mimeJavaScript)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(http.StatusInternalServerError).Send(script.Failure("internal error"))
}

// cacheControl keeps geo-targeted scripts out of shared caches. Both outcomes
// get the same header so a blocked visitor cannot tell them apart.
func (h *EmbedHandler) cacheControl(res *domain.EmbedResult) string {
	scope := "public"
	if res.GeoTargeted {
		scope = "private"
	}
	return scope + ", max-age=" + strconv.Itoa(h.cacheMaxAge)
}

// visitorIP returns the first valid address of the proxy header chain.
// Without IP validation fiber hands back the raw "client, proxy1, proxy2" value.
func visitorIP(c *fiber.Ctx) string {
	raw := c.IP()
	for _, part := range strings.Split(raw, ",") {
		if addr, err := netip.ParseAddr(strings.TrimSpace(part)); err == nil {
			return addr.String()
		}
	}
	return raw
}

func parseAt(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid at %q: %w", raw, err)
	}
	if ms < 0 || ms > int64(24*time.Hour/time.Millisecond) {
		return 0, fmt.Errorf("at %d out of range", ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// clientClass buckets a User-Agent for the request metrics.
func clientClass(header string) string {
	if header == "" {
		return "unknown"
	}
	agent := ua.Parse(header)
	switch {
	case agent.Bot:
		return "bot"
	case agent.Tablet:
		return "tablet"
	case agent.Mobile:
		return "mobile"
	case agent.Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}
