package chaincode

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"
)

// BaseContract provides common chaincode functionality
type BaseContract struct {
	Name string
}

// Init initializes the chaincode
func (bc *BaseContract) Init(stub shim.ChaincodeStubInterface) peer.Response {
	return shim.Success(nil)
}

// InvokeWithRouter handles chaincode invocations using a router
func (bc *BaseContract) InvokeWithRouter(stub shim.ChaincodeStubInterface, router *Router) peer.Response {
	function, args := stub.GetFunctionAndParameters()

	response, err := router.Route(stub, function, args)
	if err != nil {
		return shim.Error(fmt.Sprintf("Error invoking function %s: %v", function, err))
	}

	return shim.Success(response)
}

// RegistrationContract implements the chaincode interface for customer registration
type RegistrationContract struct {
	BaseContract
}

// NewRegistrationContract creates a new registration contract
func NewRegistrationContract() *RegistrationContract {
	return &RegistrationContract{
		BaseContract: BaseContract{Name: "registration"},
	}
}

// Invoke handles chaincode invocations
func (cc *RegistrationContract) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	router := NewRouter()
	return cc.InvokeWithRouter(stub, router)
}
