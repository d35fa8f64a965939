package pincraft_test

import (
	"testing"

	"github.com/fwojciec/pincraft"
	"github.com/stretchr/testify/assert"
)

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     pincraft.Request
		wantErr bool
	}{
		{"accepts absolute https URL", pincraft.Request{URL: "https://example.com/post"}, false},
		{"accepts niche", pincraft.Request{URL: "http://example.com", Niche: pincraft.NicheDIY}, false},
		{"rejects empty URL", pincraft.Request{URL: "  "}, true},
		{"rejects relative URL", pincraft.Request{URL: "/blog/post"}, true},
		{"rejects missing scheme", pincraft.Request{URL: "example.com/post"}, true},
		{"rejects non-http scheme", pincraft.Request{URL: "ftp://example.com/file"}, true},
		{"rejects unknown niche", pincraft.Request{URL: "https://example.com", Niche: "Gardening"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, pincraft.EINVALID, pincraft.ErrorCode(err))
		})
	}
}
