package qrcode_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialynx/backend/pkg/qrcode"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestGenerate(t *testing.T) {
	t.Run("returns png bytes", func(t *testing.T) {
		img, err := qrcode.Generate("https://yoomoney.ru/checkout/payments/v2?orderId=pay_1", 256)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(img, pngHeader))
	})

	t.Run("non-positive size falls back to default", func(t *testing.T) {
		img, err := qrcode.Generate("https://example.com", 0)
		require.NoError(t, err)
		assert.NotEmpty(t, img)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		_, err := qrcode.Generate("", 256)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})
}

func TestGenerateBase64Image(t *testing.T) {
	uri, err := qrcode.GenerateBase64Image("https://example.com", 128)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}
