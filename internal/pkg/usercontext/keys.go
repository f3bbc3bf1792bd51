package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	LocalsKey       = "USER_CONTEXT"
	KeyCustomerName = "customer_name"
)

// DefaultCustomerName is shown while no identity provider supplies a name
const DefaultCustomerName = "Cliente Demo"
