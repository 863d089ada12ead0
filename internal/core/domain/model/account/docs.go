// Package account contains the Account aggregate: identity, credentials,
// role, and contact details for every user of the system (admins, delivery
// agents, customers).
package account
