package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerKeys(t *testing.T) {
	customer := CustomerOwner("cust_42")
	assert.Equal(t, "cust_42", customer.Key())
	assert.False(t, customer.IsKnowledgeBase())

	kb := KnowledgeBaseOwner()
	assert.Equal(t, "techcorp_knowledge_base", kb.Key())
	assert.True(t, kb.IsKnowledgeBase())

	// Even a customer id equal to the reserved string stays a customer
	// partition in type terms; the collision is on the caller who made
	// up such an id, not on the owner type.
	spoofed := CustomerOwner("techcorp_knowledge_base")
	assert.False(t, spoofed.IsKnowledgeBase())
}
