package entity

// Envelope is the uniform wrapper every API response travels in. Data is
// only set when Success is true, Error only when it is false.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps a payload in a successful envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail wraps an error message in a failed envelope.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CreateItemRequest is the body of POST /api/products: an item plus the
// owner email the request is scoped to.
type CreateItemRequest struct {
	Item
	Email string `json:"email" binding:"required,email"`
}

// RecipeRequest is the body of POST /api/recipes.
type RecipeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// DeleteResult is the payload of a successful DELETE /api/products.
type DeleteResult struct {
	Message string `json:"message"`
}
