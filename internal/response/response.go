package response

import "github.com/gin-gonic/gin"

// Envelope is the standardized API response shape consumed by the front end.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination holds list metadata for paginated endpoints.
type Pagination struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination computes list metadata from a total row count and the
// requested page/limit.
func NewPagination(total, page, limit int) *Pagination {
	totalPages := (total + limit - 1) / limit
	return &Pagination{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// Success sends a successful JSON response with the given status code and data.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{Success: true, Data: data})
}

// SuccessMessage sends a successful response carrying only a message.
func SuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Success: true, Message: message})
}

// SuccessWithMessage sends data together with a human-readable message.
func SuccessWithMessage(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, Envelope{Success: true, Data: data, Message: message})
}

// SuccessWithPagination sends a successful list response with pagination metadata.
func SuccessWithPagination(c *gin.Context, statusCode int, data interface{}, pagination *Pagination) {
	c.JSON(statusCode, Envelope{Success: true, Data: data, Pagination: pagination})
}

// Fail sends an error response.
func Fail(c *gin.Context, statusCode int, errMsg string) {
	c.JSON(statusCode, Envelope{Success: false, Error: errMsg})
}

// FailMessage sends a failure whose body uses the message field. Auth
// endpoints use this shape so the front end can surface it directly.
func FailMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Success: false, Message: message})
}

// AbortFail aborts the middleware chain and sends an auth failure.
func AbortFail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Envelope{Success: false, Message: message})
}
