package config

// Event names for cross-chaincode communication
const (
	EventCustomerRegistered = "CustomerRegistered"
)
