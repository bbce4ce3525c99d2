package domain

import (
	"fmt"
	"time"
)

// Customer represents a registered customer entity. The identifier and email
// are unset at construction; registration workflows attach them through the
// mutation methods below. Everything else is fixed once constructed.
type Customer struct {
	CustomerID   int64     `json:"customerID,omitempty"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// CustomerInput represents the caller-supplied fields of a registration request
type CustomerInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// NewCustomer constructs a customer from the given names
func NewCustomer(firstName, lastName string) *Customer {
	return &Customer{
		FirstName:    firstName,
		LastName:     lastName,
		RegisteredAt: time.Now(),
	}
}

// SetEmail attaches an email address to the customer. The entity performs no
// validation of the address; that is the caller's concern.
func (c *Customer) SetEmail(email string) {
	c.Email = email
}

// AssignID attaches the customer identifier. A customer carries at most one
// identifier, and the zero value means none has been assigned yet.
func (c *Customer) AssignID(id int64) error {
	if c.CustomerID != 0 {
		return fmt.Errorf("customer already has identifier %d", c.CustomerID)
	}
	if id <= 0 {
		return fmt.Errorf("invalid customer identifier %d", id)
	}
	c.CustomerID = id
	return nil
}

// HasID reports whether an identifier has been assigned
func (c *Customer) HasID() bool {
	return c.CustomerID != 0
}
