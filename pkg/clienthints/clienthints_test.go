package clienthints_test

import (
	"testing"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/clienthints"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrandsAndPlatform(t *testing.T) {
	t.Parallel()

	headers := map[string]string{
		"sec-ch-ua":          `"Not A;Brand";v="99", "Chromium";v="91", "Google Chrome";v="91"`,
		"Sec-CH-UA-Mobile":   "?0",
		"Sec-CH-UA-Platform": `"Windows"`,
	}

	h := clienthints.Parse(headers)
	require.False(t, h.Empty())
	require.Len(t, h.Brands, 3)
	assert.Equal(t, "Windows", h.Platform)
	assert.True(t, h.MobileSet)
	assert.False(t, h.Mobile)

	sig := clienthints.SignificantBrand(h.Brands)
	assert.Equal(t, "Chromium", sig.Name)
	assert.Equal(t, "91", sig.Version)
}

func TestGreasedBrand(t *testing.T) {
	t.Parallel()
	assert.True(t, clienthints.GreasedBrand("Not A;Brand"))
	assert.True(t, clienthints.GreasedBrand(`Not/A)Brand`))
	assert.False(t, clienthints.GreasedBrand("Chromium"))
}

func TestParseFullVersionList(t *testing.T) {
	t.Parallel()

	headers := map[string]string{
		"Sec-CH-UA-Full-Version-List": `"Chromium";v="91.0.4472.124", "Google Chrome";v="91.0.4472.124"`,
	}
	h := clienthints.Parse(headers)
	require.Len(t, h.FullVersionList, 2)
	assert.Equal(t, "91.0.4472.124", h.FullVersionList[1].Version)
}

func TestParseMobileAndWoW64(t *testing.T) {
	t.Parallel()

	headers := map[string]string{
		"Sec-CH-UA-Mobile": "?1",
		"Sec-CH-UA-WoW64":  "?1",
	}
	h := clienthints.Parse(headers)
	assert.True(t, h.Mobile)
	assert.True(t, h.WoW64)
}

func TestParseEmptyHeaders(t *testing.T) {
	t.Parallel()

	h := clienthints.Parse(map[string]string{})
	assert.True(t, h.Empty())
}

func TestParseCaseInsensitiveHeaderNames(t *testing.T) {
	t.Parallel()

	headers := map[string]string{
		"SEC-CH-UA-MODEL": `"Pixel 7"`,
		"sec-ch-ua-arch":  `"arm"`,
	}
	h := clienthints.Parse(headers)
	assert.Equal(t, "Pixel 7", h.Model)
	assert.Equal(t, "arm", h.Arch)
}

func TestHintsToMapOmitsUnset(t *testing.T) {
	t.Parallel()

	h := clienthints.Parse(map[string]string{
		"Sec-CH-UA-Platform":         `"Linux"`,
		"Sec-CH-UA-Platform-Version": `"5.13.0"`,
		"Sec-CH-UA-Bitness":          `"64"`,
	})
	m := h.ToMap()
	assert.Equal(t, "Linux", m["platform"])
	assert.Equal(t, "5.13.0", m["platform_version"])
	assert.Equal(t, "64", m["bitness"])
	_, hasArch := m["arch"]
	assert.False(t, hasArch)
	_, hasMobile := m["mobile"]
	assert.False(t, hasMobile)
}

func TestHintsToMapEmptyValuesOmitted(t *testing.T) {
	t.Parallel()

	h := clienthints.Parse(map[string]string{
		"Sec-CH-UA-Platform":         `""`,
		"Sec-CH-UA-Platform-Version": `""`,
	})
	m := h.ToMap()
	assert.Empty(t, m)
}

func TestHintsToMapBrandPrefersSignificant(t *testing.T) {
	t.Parallel()

	h := clienthints.Parse(map[string]string{
		"Sec-CH-UA":                   `"Not A;Brand";v="99", "Chromium";v="91", "Google Chrome";v="91"`,
		"Sec-CH-UA-Full-Version-List": `"Not A;Brand";v="99.0.0.0", "Chromium";v="91.0.4472.124", "Google Chrome";v="91.0.4472.124"`,
	})
	m := h.ToMap()
	assert.Equal(t, "Chromium", m["brand"])
	assert.Equal(t, "91.0.4472.124", m["brand_version"])
}
