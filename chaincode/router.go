package chaincode

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/blockchain-onboarding-platform/registration-chaincode/handlers"
)

// Router handles function routing for the registration chaincode
type Router struct {
	handlers map[string]func(shim.ChaincodeStubInterface, []string) ([]byte, error)
}

// NewRouter creates a new router with all handler mappings
func NewRouter() *Router {
	registrationHandler := handlers.NewRegistrationHandler()

	return &Router{
		handlers: map[string]func(shim.ChaincodeStubInterface, []string) ([]byte, error){
			// Registration functions
			"RegisterCustomer":             registrationHandler.RegisterCustomer,
			"RegisterCustomerSettingEmail": registrationHandler.RegisterCustomerSettingEmail,
			"RegisterCustomerBatch":        registrationHandler.RegisterCustomerBatch,
			"RegisterCustomersWithID":      registrationHandler.RegisterCustomersWithID,

			// Query functions
			"GetCustomer":        registrationHandler.GetCustomer,
			"ListCustomers":      registrationHandler.ListCustomers,
			"GetRegistrationLog": registrationHandler.GetRegistrationLog,

			// Health probe
			"ping": ping,
		},
	}
}

// Route routes the function call to the appropriate handler
func (r *Router) Route(stub shim.ChaincodeStubInterface, function string, args []string) ([]byte, error) {
	handler, exists := r.handlers[function]
	if !exists {
		return nil, fmt.Errorf("function %s not found", function)
	}

	return handler(stub, args)
}

func ping(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	return []byte("pong"), nil
}
