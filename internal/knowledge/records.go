// Package knowledge holds the compiled-in company fact catalog: product
// descriptions, FAQs, policies and troubleshooting steps, flattened into
// text records for the memory service.
package knowledge

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindCompanyInfo     Kind = "company_info"
	KindProduct         Kind = "product_info"
	KindFAQ             Kind = "faq"
	KindPolicy          Kind = "policy"
	KindTroubleshooting Kind = "troubleshooting"
)

// Record is one flattened knowledge base entry. Immutable, built once
// at process start. Which discriminant fields are set depends on Kind:
// Category for FAQs, Product for products and troubleshooting entries,
// Title for policies.
type Record struct {
	Kind     Kind
	Category string
	Product  string
	Title    string
	Content  string
}

// Metadata returns the fields stored alongside the record in the
// memory service.
func (r Record) Metadata() map[string]any {
	m := map[string]any{
		"type":      string(r.Kind),
		"source":    "knowledge_base",
		"loaded_at": "initial_load",
	}
	if r.Category != "" {
		m["category"] = r.Category
	}
	if r.Product != "" {
		m["product"] = r.Product
	}
	if r.Title != "" {
		m["title"] = r.Title
	}
	return m
}

// Records returns the full catalog in deterministic order: company
// info, products, FAQs, policies, troubleshooting.
func Records() []Record {
	records := make([]Record, 0, 1+len(products)+len(faqs)+len(policies)+len(troubleshooting))

	records = append(records, Record{
		Kind:    KindCompanyInfo,
		Content: flattenCompany(companyInfo),
	})

	for _, p := range products {
		records = append(records, Record{
			Kind:    KindProduct,
			Product: p.Name,
			Content: flattenProduct(p),
		})
	}

	for _, f := range faqs {
		records = append(records, Record{
			Kind:     KindFAQ,
			Category: f.Category,
			Content:  flattenFAQ(f),
		})
	}

	for _, p := range policies {
		records = append(records, Record{
			Kind:    KindPolicy,
			Title:   p.Title,
			Content: flattenPolicy(p),
		})
	}

	for _, t := range troubleshooting {
		records = append(records, Record{
			Kind:    KindTroubleshooting,
			Product: t.Product,
			Content: flattenTroubleshooting(t),
		})
	}

	return records
}

func flattenCompany(c company) string {
	return fmt.Sprintf("%s is %s. Founded in %s, headquartered in %s. Contact: %s, %s",
		c.Name, c.Description, c.Established, c.Headquarters, c.Phone, c.Email)
}

func flattenProduct(p product) string {
	return fmt.Sprintf("%s is a %s product. %s. Features: %s.",
		p.Name, p.Category, p.Description, strings.Join(p.Features, ", "))
}

func flattenFAQ(f faq) string {
	return fmt.Sprintf("Q: %s A: %s", f.Question, f.Answer)
}

func flattenPolicy(p policy) string {
	return fmt.Sprintf("%s: %s Key points: %s",
		p.Title, p.Summary, strings.Join(p.KeyPoints, ", "))
}

func flattenTroubleshooting(t troubleshootingEntry) string {
	return fmt.Sprintf("Issue: %s for %s. Solution: %s", t.Issue, t.Product, t.Solution)
}
