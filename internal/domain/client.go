package domain

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	phonePattern = regexp.MustCompile(`^\+7\d{10}$`)
)

// Client — контактные данные клиента. Значение неизменяемо после конструирования.
// Телефон служит натуральным ключом: по нему клиент разрешается в хранилище
// и по нему же сравниваются два клиента.
type Client struct {
	Name  string
	Email string
	Phone string
	City  string
}

// NewClient валидирует поля и возвращает готового клиента.
// Город — свободный текст, допускается пустой.
func NewClient(name, email, phone, city string) (Client, error) {
	if name == "" {
		return Client{}, &ValidationError{Field: "name", Reason: "must be a non-empty string"}
	}
	if !emailPattern.MatchString(email) {
		return Client{}, &ValidationError{Field: "email", Reason: "must look like local@domain.tld"}
	}
	if !phonePattern.MatchString(phone) {
		return Client{}, &ValidationError{Field: "phone", Reason: "must match +7 followed by exactly 10 digits"}
	}
	return Client{Name: name, Email: email, Phone: phone, City: city}, nil
}

// ClientRef возвращает клиентскую ссылку, заполненную только телефоном.
// Используется там, где полные данные клиента разрешает хранилище по натуральному ключу.
func ClientRef(phone string) (Client, error) {
	if !phonePattern.MatchString(phone) {
		return Client{}, &ValidationError{Field: "phone", Reason: "must match +7 followed by exactly 10 digits"}
	}
	return Client{Phone: phone}, nil
}

// Equal сравнивает клиентов по натуральному ключу — телефону.
func (c Client) Equal(other Client) bool {
	return c.Phone == other.Phone
}
