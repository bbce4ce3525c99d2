package domain

import (
	"strings"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// CustomerStore defines the persistence capability for customer entities
type CustomerStore interface {
	// Save persists a finalized customer. Every call writes a new record;
	// the store performs no deduplication.
	Save(stub shim.ChaincodeStubInterface, customer *Customer) error
	// Get reads a customer previously stored under an assigned identifier
	Get(stub shim.ChaincodeStubInterface, customerID int64) (*Customer, error)
	// List returns every stored customer
	List(stub shim.ChaincodeStubInterface) ([]*Customer, error)
}

// EmailResolver derives an email address for a registration input
type EmailResolver interface {
	// Resolve returns the derived address, or the empty string when no
	// address can be derived
	Resolve(input CustomerInput) string
	// TryResolve returns the derived address together with a success flag
	TryResolve(input CustomerInput) (string, bool)
}

// IdentitySequence hands out customer identifiers in increasing order
type IdentitySequence interface {
	NextID(stub shim.ChaincodeStubInterface) (int64, error)
}

// RegistrationService orchestrates email resolution, identity assignment and
// persistence for the registration workflows. The service holds no state of
// its own, performs no logging and returns collaborator errors as-is.
type RegistrationService struct {
	store  CustomerStore
	emails EmailResolver
	ids    IdentitySequence
}

// NewRegistrationService creates a registration service with the given collaborators
func NewRegistrationService(store CustomerStore, emails EmailResolver, ids IdentitySequence) *RegistrationService {
	return &RegistrationService{
		store:  store,
		emails: emails,
		ids:    ids,
	}
}

// Register resolves an email address for the input and persists a customer
// carrying it. A blank resolution fails validation before anything is written.
func (s *RegistrationService) Register(stub shim.ChaincodeStubInterface, input CustomerInput) (*Customer, error) {
	email := s.emails.Resolve(input)
	if strings.TrimSpace(email) == "" {
		return nil, NewValidationError("email", "is required")
	}

	customer := NewCustomer(input.FirstName, input.LastName)
	customer.SetEmail(email)

	if err := s.store.Save(stub, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// RegisterSettingEmail behaves like Register but resolves the address through
// the flagged variant. Validation is decided by the returned value alone; the
// success flag is not consulted.
func (s *RegistrationService) RegisterSettingEmail(stub shim.ChaincodeStubInterface, input CustomerInput) (*Customer, error) {
	email, _ := s.emails.TryResolve(input)
	if strings.TrimSpace(email) == "" {
		return nil, NewValidationError("email", "is required")
	}

	customer := NewCustomer(input.FirstName, input.LastName)
	customer.SetEmail(email)

	if err := s.store.Save(stub, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// RegisterBatch persists one customer per input, in input order, without
// resolving emails or assigning identifiers. The first store failure aborts
// the remainder; customers already written stay written.
func (s *RegistrationService) RegisterBatch(stub shim.ChaincodeStubInterface, inputs []CustomerInput) ([]*Customer, error) {
	registered := make([]*Customer, 0, len(inputs))
	for _, input := range inputs {
		customer := NewCustomer(input.FirstName, input.LastName)

		if err := s.store.Save(stub, customer); err != nil {
			return nil, err
		}

		registered = append(registered, customer)
	}

	return registered, nil
}

// RegisterWithID persists one customer per input, in input order, assigning
// each the next identifier from the sequence before it is written. The first
// collaborator failure aborts the remainder.
func (s *RegistrationService) RegisterWithID(stub shim.ChaincodeStubInterface, inputs []CustomerInput) ([]*Customer, error) {
	registered := make([]*Customer, 0, len(inputs))
	for _, input := range inputs {
		customer := NewCustomer(input.FirstName, input.LastName)

		id, err := s.ids.NextID(stub)
		if err != nil {
			return nil, err
		}
		if err := customer.AssignID(id); err != nil {
			return nil, err
		}

		if err := s.store.Save(stub, customer); err != nil {
			return nil, err
		}

		registered = append(registered, customer)
	}

	return registered, nil
}
