package rekuest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboardDomainValidation(t *testing.T) {
	for _, domain := range []string{"education", "research", "workforce", "compliance"} {
		assert.NoError(t, Validate.Struct(domainRequest{domain}), domain)
	}

	assert.Error(t, Validate.Struct(domainRequest{"finance"}))
	assert.Error(t, Validate.Struct(domainRequest{""}))
}

func TestCaseInsensitiveOneOf(t *testing.T) {
	type s struct {
		Format string `validate:"caseinsensitiveoneof=json msgpack"`
	}

	assert.NoError(t, Validate.Struct(s{"JSON"}))
	assert.NoError(t, Validate.Struct(s{"msgpack"}))
	assert.Error(t, Validate.Struct(s{"xml"}))
}
