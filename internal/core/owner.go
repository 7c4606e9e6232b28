package core

// knowledgeBaseKey is the reserved partition under which all knowledge
// base records live in the memory service.
const knowledgeBaseKey = "techcorp_knowledge_base"

// Owner identifies a memory partition: either a single customer or the
// reserved knowledge base. Using a dedicated type instead of a bare
// string makes a collision between a customer id and the reserved key
// impossible to construct.
type Owner struct {
	id        string
	knowledge bool
}

func CustomerOwner(customerID string) Owner {
	return Owner{id: customerID}
}

func KnowledgeBaseOwner() Owner {
	return Owner{knowledge: true}
}

// Key returns the owner string sent to the memory service.
func (o Owner) Key() string {
	if o.knowledge {
		return knowledgeBaseKey
	}
	return o.id
}

func (o Owner) IsKnowledgeBase() bool {
	return o.knowledge
}
