package goquery_test

import (
	"testing"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
	"github.com/wellspentstyle/SaleSite-sub000/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageURL = "https://shop.example.net/products/linen-shirt"

func wrap(script string) string {
	return `<html><head><script type="application/ld+json">` + script + `</script></head><body></body></html>`
}

func TestStructuredProduct(t *testing.T) {
	t.Parallel()

	t.Run("single product without compare-at price", func(t *testing.T) {
		t.Parallel()

		html := wrap(`{
			"@context": "https://schema.org",
			"@type": "Product",
			"name": "Linen Shirt",
			"image": "https://cdn.example.net/shirt.jpg",
			"offers": {"@type": "Offer", "price": 59.99, "priceCurrency": "USD"}
		}`)

		record := goquery.StructuredProduct(html, pageURL)
		require.NotNil(t, record)
		assert.Equal(t, "Linen Shirt", record.Name)
		assert.Equal(t, "https://cdn.example.net/shirt.jpg", record.ImageURL)
		assert.Equal(t, 59.99, record.SalePrice)
		assert.Nil(t, record.OriginalPrice)
		assert.Equal(t, 0, record.PercentOff)
		assert.Equal(t, goquery.StructuredConfidence, record.Confidence)
		assert.Equal(t, pageURL, record.URL)
	})

	t.Run("unwraps @graph container", func(t *testing.T) {
		t.Parallel()

		html := wrap(`{
			"@context": "https://schema.org",
			"@graph": [
				{"@type": "BreadcrumbList"},
				{
					"@type": "Product",
					"name": "Wool Coat",
					"image": ["https://cdn.example.net/coat.jpg"],
					"offers": [{"price": "129.00"}]
				}
			]
		}`)

		record := goquery.StructuredProduct(html, pageURL)
		require.NotNil(t, record)
		assert.Equal(t, "Wool Coat", record.Name)
		assert.Equal(t, 129.00, record.SalePrice)
	})

	t.Run("computes percent off from aggregate high price", func(t *testing.T) {
		t.Parallel()

		html := wrap(`{
			"@type": "Product",
			"name": "Suede Boots",
			"image": {"@type": "ImageObject", "url": "https://cdn.example.net/boots.jpg"},
			"offers": {"@type": "AggregateOffer", "lowPrice": 90, "highPrice": 120, "price": 90}
		}`)

		record := goquery.StructuredProduct(html, pageURL)
		require.NotNil(t, record)
		require.NotNil(t, record.OriginalPrice)
		assert.Equal(t, 120.0, *record.OriginalPrice)
		assert.Equal(t, 90.0, record.SalePrice)
		assert.Equal(t, 25, record.PercentOff)
	})

	t.Run("array type form matches", func(t *testing.T) {
		t.Parallel()

		html := wrap(`{
			"@type": ["Product", "IndividualProduct"],
			"name": "Belt",
			"image": "https://cdn.example.net/belt.jpg",
			"offers": {"price": "25"}
		}`)

		require.NotNil(t, goquery.StructuredProduct(html, pageURL))
	})

	t.Run("skips malformed block and uses next", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<script type="application/ld+json">{not json at all</script>
			<script type="application/ld+json">{"@type":"Product","name":"Scarf","image":"https://cdn.example.net/scarf.jpg","offers":{"price":19.5}}</script>
		</head></html>`

		record := goquery.StructuredProduct(html, pageURL)
		require.NotNil(t, record)
		assert.Equal(t, "Scarf", record.Name)
	})

	t.Run("no result when image is not absolute http", func(t *testing.T) {
		t.Parallel()

		html := wrap(`{
			"@type": "Product",
			"name": "Hat",
			"image": "/images/hat.jpg",
			"offers": {"price": 15}
		}`)

		assert.Nil(t, goquery.StructuredProduct(html, pageURL))
	})

	t.Run("no result when image is a placeholder host", func(t *testing.T) {
		t.Parallel()

		html := wrap(`{
			"@type": "Product",
			"name": "Hat",
			"image": "https://via.placeholder.com/300.png",
			"offers": {"price": 15}
		}`)

		assert.Nil(t, goquery.StructuredProduct(html, pageURL))
	})

	t.Run("skips placeholder image in favor of a real one", func(t *testing.T) {
		t.Parallel()

		html := wrap(`{
			"@type": "Product",
			"name": "Hat",
			"image": ["https://placehold.co/600x400", "https://cdn.example.net/hat.jpg"],
			"offers": {"price": 15}
		}`)

		record := goquery.StructuredProduct(html, pageURL)
		require.NotNil(t, record)
		assert.Equal(t, "https://cdn.example.net/hat.jpg", record.ImageURL)
	})

	t.Run("no result for non-product entities", func(t *testing.T) {
		t.Parallel()

		html := wrap(`{"@type": "Organization", "name": "Shop"}`)
		assert.Nil(t, goquery.StructuredProduct(html, pageURL))
	})

	t.Run("no result without usable price", func(t *testing.T) {
		t.Parallel()

		html := wrap(`{
			"@type": "Product",
			"name": "Hat",
			"image": "https://cdn.example.net/hat.jpg",
			"offers": {"availability": "InStock"}
		}`)

		assert.Nil(t, goquery.StructuredProduct(html, pageURL))
	})

	t.Run("no result for plain html", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, goquery.StructuredProduct("<html><body><p>hi</p></body></html>", pageURL))
	})

	t.Run("parses currency-prefixed string price", func(t *testing.T) {
		t.Parallel()

		html := wrap(`{
			"@type": "Product",
			"name": "Bag",
			"image": "https://cdn.example.net/bag.jpg",
			"offers": {"price": "$1,299.00"}
		}`)

		record := goquery.StructuredProduct(html, pageURL)
		require.NotNil(t, record)
		assert.Equal(t, 1299.00, record.SalePrice)
	})

	t.Run("record passes domain validation", func(t *testing.T) {
		t.Parallel()

		html := wrap(`{
			"@type": "Product",
			"name": "Linen Shirt",
			"image": "https://cdn.example.net/shirt.jpg",
			"offers": {"@type": "AggregateOffer", "price": 45, "highPrice": 60}
		}`)

		record := goquery.StructuredProduct(html, pageURL)
		require.NotNil(t, record)
		require.NoError(t, record.Validate())
		_ = salesite.ProductRecord(*record)
	})
}
