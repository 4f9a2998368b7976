package model

// Customer mirrors a row of the `cliente` table.  The email is the natural
// key: it is unique, used as the JWT subject and referenced by reservations.
// Only the bcrypt hash of the password is stored.
type Customer struct {
	Email        string // cliente.email
	Name         string // cliente.nome
	Surname      string // cliente.cognome
	PasswordHash string // cliente.password
}
