package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords_Order(t *testing.T) {
	records := Records()
	require.Len(t, records, 28)

	// Deterministic order: company info, products, FAQs, policies,
	// troubleshooting.
	assert.Equal(t, KindCompanyInfo, records[0].Kind)
	assert.Equal(t, KindProduct, records[1].Kind)
	assert.Equal(t, KindProduct, records[3].Kind)
	assert.Equal(t, KindFAQ, records[4].Kind)
	assert.Equal(t, KindPolicy, records[21].Kind)
	assert.Equal(t, KindTroubleshooting, records[24].Kind)
	assert.Equal(t, KindTroubleshooting, records[27].Kind)

	// Two calls produce the same sequence.
	again := Records()
	for i := range records {
		assert.Equal(t, records[i], again[i])
	}
}

func TestRecords_Flatten(t *testing.T) {
	records := Records()

	tests := []struct {
		name  string
		index int
		want  []string
	}{
		{
			name:  "company_info",
			index: 0,
			want:  []string{"TechCorp is", "Founded in 2010", "headquartered in San Francisco, CA", "1-800-TECHCORP"},
		},
		{
			name:  "product",
			index: 1,
			want:  []string{"CloudSync Pro is a Cloud Storage product.", "Features: Unlimited storage, Real-time sync across devices"},
		},
		{
			name:  "faq",
			index: 4,
			want:  []string{"Q: What is TechCorp?", "A: TechCorp is a leading technology company"},
		},
		{
			name:  "policy",
			index: 21,
			want:  []string{"Privacy Policy:", "Key points: We collect minimal personal information"},
		},
		{
			name:  "troubleshooting",
			index: 24,
			want:  []string{"Issue: Sync not working for CloudSync Pro.", "Solution: 1. Check your internet connection"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := records[tt.index].Content
			for _, fragment := range tt.want {
				assert.Contains(t, content, fragment)
			}
		})
	}
}

func TestRecord_Metadata(t *testing.T) {
	records := Records()

	for _, rec := range records {
		m := rec.Metadata()
		assert.Equal(t, string(rec.Kind), m["type"])
		assert.Equal(t, "knowledge_base", m["source"])

		switch rec.Kind {
		case KindFAQ:
			assert.NotEmpty(t, m["category"])
		case KindProduct, KindTroubleshooting:
			assert.NotEmpty(t, m["product"])
		case KindPolicy:
			assert.NotEmpty(t, m["title"])
		}
	}
}

func TestRecords_UnlimitedStorageFAQPresent(t *testing.T) {
	var found bool
	for _, rec := range Records() {
		if rec.Kind == KindFAQ && strings.Contains(rec.Content, "unlimited storage") {
			found = true
		}
	}
	assert.True(t, found, "the CloudSync Pro storage FAQ must be part of the catalog")
}
