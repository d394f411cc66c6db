package script

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"announcebar/internal/features/announcements/domain"
	"announcebar/internal/features/announcements/render"
)

// hostPage serves a page that includes /embed.js the given number of times.
func hostPage(t *testing.T, js []byte, includes int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/embed.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript")
		_, _ = w.Write(js)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<!doctype html><html><head></head><body><main id="host">content</main>`)
		for i := 0; i < includes; i++ {
			fmt.Fprint(w, `<script src="/embed.js"></script>`)
		}
		fmt.Fprint(w, `</body></html>`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func browser(t *testing.T) *rod.Browser {
	t.Helper()
	if os.Getenv("BROWSER_TESTS") != "1" {
		t.Skip("set BROWSER_TESTS=1 to run headless browser tests")
	}

	u, err := launcher.New().Headless(true).NoSandbox(true).Launch()
	require.NoError(t, err)

	b := rod.New().ControlURL(u)
	require.NoError(t, b.Connect())
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func countBars(page *rod.Page) int {
	return page.MustEval(`() => document.querySelectorAll("[id^='announcement-bar-']:not(link)").length`).Int()
}

// TestBrowser_IdempotentMount verifies a duplicate include yields a single bar.
func TestBrowser_IdempotentMount(t *testing.T) {
	b := browser(t)
	js, err := Build(samplePayload())
	require.NoError(t, err)

	page := b.MustPage(hostPage(t, js, 2).URL + "/")
	page.MustWaitLoad()

	assert.Equal(t, 1, countBars(page))
	assert.Equal(t, "announcement-bar-sale", page.MustEval(`() => document.body.firstElementChild.id`).Str())
	assert.Equal(t, "48px", page.MustEval(`() => document.documentElement.style.getPropertyValue("--announcement-bar-height")`).Str())
}

// TestBrowser_DomainMismatch verifies nothing is mounted and the margin is untouched.
func TestBrowser_DomainMismatch(t *testing.T) {
	b := browser(t)
	p := samplePayload()
	p.AllowedDomain = "shop.example.com"
	js, err := Build(p)
	require.NoError(t, err)

	page := b.MustPage(hostPage(t, js, 1).URL + "/")
	page.MustWaitLoad()

	assert.Equal(t, 0, countBars(page))
	assert.Equal(t, "", page.MustEval(`() => document.body.style.marginTop`).Str())
}

// TestBrowser_PathMismatch verifies page path targeting.
func TestBrowser_PathMismatch(t *testing.T) {
	b := browser(t)
	p := samplePayload()
	p.PagePaths = []string{"/checkout"}
	js, err := Build(p)
	require.NoError(t, err)

	srv := hostPage(t, js, 1)

	page := b.MustPage(srv.URL + "/home")
	page.MustWaitLoad()
	assert.Equal(t, 0, countBars(page))

	page = b.MustPage(srv.URL + "/checkout/step-1")
	page.MustWaitLoad()
	assert.Equal(t, 1, countBars(page))
}

// TestBrowser_StickyClose verifies the margin before mount equals the margin after close.
func TestBrowser_StickyClose(t *testing.T) {
	b := browser(t)
	js, err := Build(samplePayload())
	require.NoError(t, err)

	page := b.MustPage(hostPage(t, js, 1).URL + "/")
	page.MustWaitLoad()

	assert.Equal(t, "56px", page.MustEval(`() => document.body.style.marginTop`).Str())

	page.MustElement("[data-ab-close]").MustClick()

	assert.Equal(t, 0, countBars(page))
	assert.Equal(t, "", page.MustEval(`() => document.body.style.marginTop`).Str())
	assert.Equal(t, "", page.MustEval(`() => document.documentElement.style.getPropertyValue("--announcement-bar-height")`).Str())
}

const (
	testIntervalMS  = 400
	testAnimationMS = 100
)

// carouselPayload mounts three real carousel slides with a short rotation interval.
func carouselPayload(pauseOnHover bool) Payload {
	a := &domain.Announcement{
		Slug:       "rotate",
		Visibility: true,
		Type:       domain.TypeCarousel,
		Slides: []domain.Slide{
			{Title: "One", Message: "a"},
			{Title: "Two", Message: "b"},
			{Title: "Three", Message: "c"},
		},
	}
	a.Normalize()

	p := samplePayload()
	p.Slug = a.Slug
	p.ElementID = a.ElementID()
	p.Sticky = false
	p.Closable = false
	p.HTML = render.Serialize(render.Body(a, nil, nil))
	p.Carousel = &CarouselConfig{
		Slides:       len(a.Slides),
		IntervalMS:   testIntervalMS,
		AnimationMS:  testAnimationMS,
		PauseOnHover: pauseOnHover,
	}
	return p
}

// activeSlidesJS returns the indices of the slides fully on screen.
const activeSlidesJS = `() => Array.from(document.querySelectorAll("[data-ab-slide]"))
	.map((el, i) => ({i, x: el.style.transform, o: el.style.opacity}))
	.filter(s => s.o === "1" && /^translateX\(0(px|%)?\)$/.test(s.x))
	.map(s => s.i)`

func activeSlides(page *rod.Page) []int {
	var out []int
	for _, v := range page.MustEval(activeSlidesJS).Arr() {
		out = append(out, v.Int())
	}
	return out
}

// TestBrowser_CarouselRotation verifies one active slide at every sample and a 0,1,2,0 sequence.
func TestBrowser_CarouselRotation(t *testing.T) {
	b := browser(t)
	js, err := Build(carouselPayload(false))
	require.NoError(t, err)

	page := b.MustPage(hostPage(t, js, 1).URL + "/")
	page.MustWaitLoad()

	var sequence []int
	deadline := time.Now().Add(time.Duration(testIntervalMS*6) * time.Millisecond)
	for time.Now().Before(deadline) {
		active := activeSlides(page)
		require.Len(t, active, 1, "exactly one slide must be active at every sample")
		if len(sequence) == 0 || sequence[len(sequence)-1] != active[0] {
			sequence = append(sequence, active[0])
		}
		time.Sleep(25 * time.Millisecond)
	}

	require.GreaterOrEqual(t, len(sequence), 4)
	for i := 1; i < len(sequence); i++ {
		assert.Equal(t, (sequence[i-1]+1)%3, sequence[i], "sequence %v", sequence)
	}
}

// TestBrowser_CarouselHoverPause verifies hovering freezes the active slide and leaving resumes rotation.
func TestBrowser_CarouselHoverPause(t *testing.T) {
	b := browser(t)
	js, err := Build(carouselPayload(true))
	require.NoError(t, err)

	page := b.MustPage(hostPage(t, js, 1).URL + "/")
	page.MustWaitLoad()

	page.MustEval(`() => document.querySelector("[data-ab-track]").dispatchEvent(new MouseEvent("mouseenter"))`)
	paused := activeSlides(page)
	require.Len(t, paused, 1)

	time.Sleep(time.Duration(testIntervalMS*3) * time.Millisecond)
	assert.Equal(t, paused, activeSlides(page))

	page.MustEval(`() => document.querySelector("[data-ab-track]").dispatchEvent(new MouseEvent("mouseleave"))`)
	time.Sleep(time.Duration(testIntervalMS+testAnimationMS) * time.Millisecond)

	resumed := activeSlides(page)
	require.Len(t, resumed, 1)
	assert.Equal(t, (paused[0]+1)%3, resumed[0])
}
