package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const amazonFixture = `<html><body>
	<div data-component-type="s-search-result" data-asin="B0TESTASIN1">
		<span class="puis-sponsored-label-text">Sponsored</span>
		<div data-cy="title-recipe">
			<a class="a-link-normal" href="/dp/B0TESTASIN1/ref=sr_1"><h2><span>Sponsored 12TB Drive</span></h2></a>
		</div>
		<span class="a-price"><span class="a-offscreen">$149.99</span></span>
	</div>
	<div data-component-type="s-search-result" data-asin="B0TESTASIN2">
		<div data-cy="title-recipe">
			<a class="a-link-normal" href="/dp/B0TESTASIN2/ref=sr_2"><h2><span>Seagate Exos 16TB Enterprise HDD</span></h2></a>
		</div>
		<span class="a-price"><span class="a-offscreen">$219.99</span></span>
	</div>
	<div data-component-type="s-search-result" data-asin="B0TESTASIN3">
		<div data-cy="title-recipe">
			<a class="a-link-normal" href="/dp/B0TESTASIN3/ref=sr_3"><h2><span>WD Elements 8TB Desktop</span></h2></a>
		</div>
		<span class="a-price">
			<span class="a-price-whole">139.</span><span class="a-price-fraction">99</span>
		</span>
	</div>
</body></html>`

func TestAmazonAdapter(t *testing.T) {
	adapter := NewAdapter(SourceAmazon)
	require.NotNil(t, adapter)
	assert.Equal(t, SourceAmazon, adapter.Source())

	records, err := adapter.ExtractListings(docFromHTML(t, amazonFixture))
	assert.NoError(t, err)
	require.Len(t, records, 2, "sponsored listing must be skipped")

	first := records[0]
	assert.Equal(t, "Seagate Exos 16TB Enterprise HDD", first.Title)
	assert.Equal(t, "https://www.amazon.com/dp/B0TESTASIN2/ref=sr_2", first.URL)
	assert.Equal(t, "B0TESTASIN2", first.ProductID)
	require.NotNil(t, first.CapacityBytes)
	assert.Equal(t, int64(16_000_000_000_000), *first.CapacityBytes)
	require.NotNil(t, first.PriceCents)
	assert.Equal(t, int64(21999), *first.PriceCents)

	// Whole+fraction price fallback
	second := records[1]
	require.NotNil(t, second.PriceCents)
	assert.Equal(t, int64(13999), *second.PriceCents)
}

const neweggFixture = `<html><body>
	<div class="item-cell">
		<a class="item-title" href="https://www.newegg.com/seagate-exos-4tb/p/N82E16822184155?Item=N82E16822184155">Seagate Exos 7E8 4TB SATA HDD</a>
		<ul><li class="price-current"><strong>79</strong><sup>.99</sup></li></ul>
	</div>
	<div class="item-cell">
		<a class="item-title" href="https://www.newegg.com/wd-gold-2tb/p/N82E16822234567">WD Gold 2TB Enterprise</a>
		<ul><li class="price-current"><strong>89</strong><sup>.00</sup></li></ul>
	</div>
	<div class="item-cell">
		<a class="item-title" href="/relative-link-no-scheme/p/N82E0000">Drive with relative link 4TB</a>
		<ul><li class="price-current"><strong>59</strong><sup>.99</sup></li></ul>
	</div>
</body></html>`

func TestNeweggAdapter(t *testing.T) {
	adapter := NewAdapter(SourceNewegg)
	require.NotNil(t, adapter)

	records, err := adapter.ExtractListings(docFromHTML(t, neweggFixture))
	assert.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "Seagate Exos 7E8 4TB SATA HDD", first.Title)
	assert.Equal(t, "N82E16822184155", first.ProductID)
	require.NotNil(t, first.CapacityBytes)
	assert.Equal(t, int64(4_000_000_000_000), *first.CapacityBytes)
	require.NotNil(t, first.PriceCents)
	assert.Equal(t, int64(7999), *first.PriceCents)

	// Newegg links must be absolute; the relative one is dropped
	assert.Empty(t, records[2].URL)
}

func TestNeweggAdapter_EmptyResults(t *testing.T) {
	html := `<html><body><p>Your search did not match any products.</p></body></html>`

	records, err := NewAdapter(SourceNewegg).ExtractListings(docFromHTML(t, html))
	assert.NoError(t, err)
	assert.Empty(t, records)
}

const spdFixture = `<html><body>
	<div class="boost-pfs-filter-product-item-inner">
		<a class="boost-pfs-filter-product-item-title" href="/products/wd-ultrastar-dc-hc530-14tb">WD Ultrastar DC HC530 14TB Recertified</a>
		<span class="boost-pfs-filter-product-item-regular-price">$134.99</span>
	</div>
	<div class="boost-pfs-filter-product-item-inner">
		<a class="boost-pfs-filter-product-item-title" href="/products/seagate-exos-x18-18tb">Seagate Exos X18 18TB Recertified</a>
		<span class="boost-pfs-filter-product-item-regular-price">$179.99</span>
	</div>
	<div class="boost-pfs-filter-product-item-inner">
		<a class="boost-pfs-filter-product-item-title" href="/products/mystery-drive">Mystery drive without capacity in title</a>
		<span class="boost-pfs-filter-product-item-regular-price">$49.99</span>
	</div>
</body></html>`

func TestServerPartDealsAdapter(t *testing.T) {
	adapter := NewAdapter(SourceServerPartDeals)
	require.NotNil(t, adapter)

	records, err := adapter.ExtractListings(docFromHTML(t, spdFixture))
	assert.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "WD Ultrastar DC HC530 14TB Recertified", first.Title)
	assert.Equal(t, "https://serverpartdeals.com/products/wd-ultrastar-dc-hc530-14tb", first.URL)
	assert.Equal(t, "wd-ultrastar-dc-hc530-14tb", first.ProductID)
	require.NotNil(t, first.CapacityBytes)
	assert.Equal(t, int64(14_000_000_000_000), *first.CapacityBytes)

	// No capacity token in the title leaves the field absent
	assert.Nil(t, records[2].CapacityBytes)
	assert.NotNil(t, records[2].PriceCents)
}

func TestCreateAdapters(t *testing.T) {
	adapters := CreateAdapters()
	require.Len(t, adapters, 3)

	sources := make(map[Source]bool)
	for _, a := range adapters {
		sources[a.Source()] = true
	}
	assert.True(t, sources[SourceAmazon])
	assert.True(t, sources[SourceNewegg])
	assert.True(t, sources[SourceServerPartDeals])
}

func TestNewAdapter_UnknownSource(t *testing.T) {
	assert.Nil(t, NewAdapter(Source("Unknown")))
}
