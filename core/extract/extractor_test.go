package extract

import (
	"testing"

	"github.com/danielengelsman/Isratest/core"
)

const legacyPage = `<!DOCTYPE html>
<html lang="en">
<body>
<header><nav>site chrome</nav></header>
<section class="featured-post reveal" data-post="featured" data-cat="economy">
  <div class="featured-image">
    <img src="/img/market.jpg" alt="Tel Aviv market stalls">
  </div>
  <div class="featured-body">
    <span class="featured-cat">Economy</span>
    <span class="featured-date">January 23, 2025</span>
    <h2 class="featured-title">Tel Aviv&rsquo;s Market: Up 12%!</h2>
    <p class="featured-excerpt">Prices climbed across the shuk &mdash; again.</p>
    <a class="featured-link" href="#x">Read the full story</a>
  </div>
</section>
<section class="posts-section">
<div class="posts-grid">
<!-- Post 1 -->
<article class="post-card reveal rd1" data-cat="tech">
  <div class="card-image">
    <img src="/img/startup.jpg" alt="Startup office">
  </div>
  <div class="card-body">
    <span class="post-date">January 10, 2025</span>
    <h3 class="post-title">A Startup Story</h3>
    <p class="post-excerpt">From garage to IPO.</p>
  </div>
</article>
<!-- Post 2 -->
<article class="post-card reveal rd2" data-cat="podcasts">
  <div class="card-body">
    <span class="post-date">December 31, 2024</span>
    <h3 class="post-title">Year in Review</h3>
  </div>
</article>
</div>
</section>
</body>
</html>`

func mustLocale(t *testing.T, code string) *core.Locale {
	t.Helper()
	loc, err := core.ForLanguage(code)
	if err != nil {
		t.Fatalf("ForLanguage(%q): %v", code, err)
	}
	return loc
}

func TestPosts(t *testing.T) {
	t.Parallel()

	posts, err := New(mustLocale(t, "en")).Posts(legacyPage)
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}

	featured := posts[0]
	if !featured.Featured {
		t.Error("first post should carry the featured flag")
	}
	if featured.Title != "Tel Aviv’s Market: Up 12%!" {
		t.Errorf("featured title = %q", featured.Title)
	}
	if featured.Date != "2025-01-23" {
		t.Errorf("featured date = %q, want 2025-01-23", featured.Date)
	}
	if featured.Category != "economy" {
		t.Errorf("featured category = %q", featured.Category)
	}
	if featured.Excerpt != "Prices climbed across the shuk — again." {
		t.Errorf("featured excerpt = %q", featured.Excerpt)
	}
	if featured.Image != "/img/market.jpg" || featured.ImageAlt != "Tel Aviv market stalls" {
		t.Errorf("featured image = %q / %q", featured.Image, featured.ImageAlt)
	}
	if featured.Slug != "tel-avivs-market-up-12" {
		t.Errorf("featured slug = %q", featured.Slug)
	}

	card := posts[1]
	if card.Featured {
		t.Error("card should not carry the featured flag")
	}
	if card.Title != "A Startup Story" || card.Category != "tech" || card.Date != "2025-01-10" {
		t.Errorf("card fields = %+v", card)
	}
	if card.Slug != "a-startup-story" {
		t.Errorf("card slug = %q", card.Slug)
	}
}

// A fragment missing a field keeps extracting: the field is just empty.
func TestCardMissingFields(t *testing.T) {
	t.Parallel()

	posts, err := New(mustLocale(t, "en")).Cards(legacyPage)
	if err != nil {
		t.Fatalf("Cards: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d cards, want 2", len(posts))
	}

	bare := posts[1]
	if bare.Title != "Year in Review" {
		t.Errorf("title = %q", bare.Title)
	}
	if bare.Excerpt != "" {
		t.Errorf("missing excerpt = %q, want empty", bare.Excerpt)
	}
	if bare.Image != "" || bare.ImageAlt != "" {
		t.Errorf("missing image = %q / %q, want empty", bare.Image, bare.ImageAlt)
	}
}

func TestMissingStructuralAnchors(t *testing.T) {
	t.Parallel()

	e := New(mustLocale(t, "en"))

	featured, err := e.Featured("<html><body><p>nothing here</p></body></html>")
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if featured != nil {
		t.Errorf("featured = %+v, want nil", featured)
	}

	cards, err := e.Cards("<html><body><p>no grid</p></body></html>")
	if err != nil {
		t.Fatalf("Cards: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("got %d cards from a page without a grid, want 0", len(cards))
	}
}

// Non-English extraction derives the provisional slug from the image alt
// text, not from the (non-Latin) title.
func TestHebrewSlugFromAltText(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<div class="posts-grid">
<!-- Post 1 -->
<article class="post-card" data-cat="culture">
  <img src="/img/jlm.jpg" alt="Old City walls at dusk">
  <div class="card-body">
    <span class="post-date">5 אוגוסט 2025</span>
    <h3 class="post-title">חומות העיר העתיקה</h3>
  </div>
</article>
</div>
</body></html>`

	posts, err := New(mustLocale(t, "he")).Cards(page)
	if err != nil {
		t.Fatalf("Cards: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d cards, want 1", len(posts))
	}
	if posts[0].Slug != "old-city-walls-at-dusk" {
		t.Errorf("slug = %q, want old-city-walls-at-dusk", posts[0].Slug)
	}
	if posts[0].Date != "2025-08-05" {
		t.Errorf("date = %q, want 2025-08-05", posts[0].Date)
	}
}

func TestUnifySlugs(t *testing.T) {
	t.Parallel()

	posts := []core.Post{{Slug: "a"}, {Slug: "b"}, {Slug: "c"}}
	unified := core.UnifySlugs([]string{"x", "y"}, posts)

	want := []string{"x", "y", "c"}
	for i, w := range want {
		if unified[i].Slug != w {
			t.Errorf("post %d slug = %q, want %q", i, unified[i].Slug, w)
		}
	}
}
