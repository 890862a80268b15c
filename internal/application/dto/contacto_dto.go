package dto

// ContactoRequest payload de POST /contacto.
type ContactoRequest struct {
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Mensaje string `json:"mensaje"`
}
