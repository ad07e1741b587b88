package scrape

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"

	"github.com/sells-group/enrich-cli/internal/model"
)

func TestLookupSite_ExactAndWWW(t *testing.T) {
	fn := func(_ *goquery.Document, pageURL string) []model.Office {
		return []model.Office{{Website: pageURL}}
	}
	RegisterSite("examplefirm.com", fn)
	t.Cleanup(func() {
		sitesMu.Lock()
		delete(sites, "examplefirm.com")
		sitesMu.Unlock()
	})

	assert.NotNil(t, LookupSite("examplefirm.com"))
	assert.NotNil(t, LookupSite("www.examplefirm.com"))
	assert.NotNil(t, LookupSite("EXAMPLEFIRM.COM"))
	assert.Nil(t, LookupSite("otherfirm.com"))
}
