package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/blockchain-onboarding-platform/registration-chaincode/config"
	"github.com/blockchain-onboarding-platform/registration-chaincode/domain"
	"github.com/blockchain-onboarding-platform/registration-chaincode/services"
)

// Workflow names recorded in events and the registration journal
const (
	workflowRegister             = "RegisterCustomer"
	workflowRegisterSettingEmail = "RegisterCustomerSettingEmail"
	workflowRegisterBatch        = "RegisterCustomerBatch"
	workflowRegisterWithID       = "RegisterCustomersWithID"
)

// RegistrationHandler handles customer registration operations
type RegistrationHandler struct {
	registrationService *domain.RegistrationService
	customerStore       domain.CustomerStore
	eventService        *services.EventService
	registrationLog     *services.RegistrationLog
}

// NewRegistrationHandler creates a handler wired to the ledger-backed collaborators
func NewRegistrationHandler() *RegistrationHandler {
	store := domain.NewLedgerCustomerStore()

	return &RegistrationHandler{
		registrationService: domain.NewRegistrationService(
			store,
			domain.NewDomainEmailResolver(config.EmailDomain),
			domain.NewLedgerIdentitySequence(),
		),
		customerStore:   store,
		eventService:    services.NewEventService(),
		registrationLog: services.NewRegistrationLog(),
	}
}

// RegisterCustomer registers a single customer with a resolved email address
func (h *RegistrationHandler) RegisterCustomer(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	input, err := parseInput(args)
	if err != nil {
		return nil, err
	}

	customer, err := h.registrationService.Register(stub, input)
	if err != nil {
		return nil, err
	}

	if err := h.finalizeRegistration(stub, workflowRegister, customer); err != nil {
		return nil, err
	}

	return json.Marshal(customer)
}

// RegisterCustomerSettingEmail registers a single customer through the
// flag-based email resolution variant
func (h *RegistrationHandler) RegisterCustomerSettingEmail(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	input, err := parseInput(args)
	if err != nil {
		return nil, err
	}

	customer, err := h.registrationService.RegisterSettingEmail(stub, input)
	if err != nil {
		return nil, err
	}

	if err := h.finalizeRegistration(stub, workflowRegisterSettingEmail, customer); err != nil {
		return nil, err
	}

	return json.Marshal(customer)
}

// RegisterCustomerBatch registers a batch of customers without resolving
// email addresses or assigning identifiers
func (h *RegistrationHandler) RegisterCustomerBatch(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	inputs, err := parseInputs(args)
	if err != nil {
		return nil, err
	}

	customers, err := h.registrationService.RegisterBatch(stub, inputs)
	if err != nil {
		return nil, err
	}

	if err := h.finalizeBatchRegistration(stub, workflowRegisterBatch, customers); err != nil {
		return nil, err
	}

	return json.Marshal(customers)
}

// RegisterCustomersWithID registers a batch of customers, assigning each the
// next sequential identifier before it is stored
func (h *RegistrationHandler) RegisterCustomersWithID(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	inputs, err := parseInputs(args)
	if err != nil {
		return nil, err
	}

	customers, err := h.registrationService.RegisterWithID(stub, inputs)
	if err != nil {
		return nil, err
	}

	if err := h.finalizeBatchRegistration(stub, workflowRegisterWithID, customers); err != nil {
		return nil, err
	}

	return json.Marshal(customers)
}

func (h *RegistrationHandler) finalizeRegistration(stub shim.ChaincodeStubInterface, workflow string, customer *domain.Customer) error {
	if err := h.registrationLog.Record(stub, workflow, customer); err != nil {
		return fmt.Errorf("failed to record registration: %v", err)
	}

	if err := h.eventService.EmitCustomerRegistered(stub, workflow, customer); err != nil {
		return fmt.Errorf("failed to emit event: %v", err)
	}

	return nil
}

func (h *RegistrationHandler) finalizeBatchRegistration(stub shim.ChaincodeStubInterface, workflow string, customers []*domain.Customer) error {
	for _, customer := range customers {
		if err := h.registrationLog.Record(stub, workflow, customer); err != nil {
			return fmt.Errorf("failed to record registration: %v", err)
		}
	}

	if err := h.eventService.EmitCustomersRegistered(stub, workflow, customers); err != nil {
		return fmt.Errorf("failed to emit event: %v", err)
	}

	return nil
}

func parseInput(args []string) (domain.CustomerInput, error) {
	var input domain.CustomerInput

	if len(args) != 1 {
		return input, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	if err := json.Unmarshal([]byte(args[0]), &input); err != nil {
		return input, fmt.Errorf("failed to parse registration input: %v", err)
	}

	return input, nil
}

func parseInputs(args []string) ([]domain.CustomerInput, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	var inputs []domain.CustomerInput
	if err := json.Unmarshal([]byte(args[0]), &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse registration inputs: %v", err)
	}

	return inputs, nil
}
