package repository

import "fmt"

// Caminhos de coleção do armazenamento de metadados do tenant
const (
	clientsCollection = "clients"
	usersCollection   = "users"
	invitesCollection = "invites"
)

func websitesPath(clientID string) string {
	return fmt.Sprintf("clients/%s/websites", clientID)
}

func annotationsPath(clientID string) string {
	return fmt.Sprintf("clients/%s/annotations", clientID)
}

func targetsPath(clientID string) string {
	return fmt.Sprintf("clients/%s/targets", clientID)
}

func currencyRatesPath(clientID string) string {
	return fmt.Sprintf("clients/%s/currencyRates", clientID)
}
