package requester

import "github.com/gin-gonic/gin"

// ContextKey is the gin context key OptionalAuth stores the requester under.
const ContextKey = "requester"

// Requester is the authenticated caller. A nil *Requester means anonymous.
type Requester struct {
	MemberID int64
	Email    string
}

// ID returns the member id, reporting false for an anonymous caller.
func (r *Requester) ID() (int64, bool) {
	if r == nil {
		return 0, false
	}
	return r.MemberID, true
}

// Set stores r on the request. Passing nil marks the request anonymous.
func Set(c *gin.Context, r *Requester) {
	c.Set(ContextKey, r)
}

// FromGin returns the requester stored by OptionalAuth, or nil.
func FromGin(c *gin.Context) *Requester {
	v, exists := c.Get(ContextKey)
	if !exists {
		return nil
	}
	r, ok := v.(*Requester)
	if !ok {
		return nil
	}
	return r
}
