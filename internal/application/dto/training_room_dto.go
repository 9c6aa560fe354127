package dto

import "time"

// TrainingRoomRequest entrada para crear o reemplazar una sala.
// Las referencias llegan como IDs; la expansión solo ocurre en lecturas.
type TrainingRoomRequest struct {
	Name            string   `json:"name"`
	Capacity        *float64 `json:"capacity"`
	Specializations []string `json:"specializations"`
	Address         string   `json:"address"`
	Responsible     string   `json:"responsible"`
	Exercises       []string `json:"exercises"`
	Description     string   `json:"description"`
}

// TrainingRoomResponse salida de una sala sin expandir (referencias como IDs).
type TrainingRoomResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Capacity        int       `json:"capacity"`
	Specializations []string  `json:"specializations,omitempty"`
	Address         string    `json:"address,omitempty"`
	Responsible     string    `json:"responsible,omitempty"`
	Exercises       []string  `json:"exercises,omitempty"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ResponsibleResponse proyección del usuario responsable dentro de una sala
// expandida: solo nombre, teléfono y email.
type ResponsibleResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email"`
}

// TrainingRoomExpandedResponse salida de una sala con referencias expandidas
// (listado). Las referencias rotas se omiten.
type TrainingRoomExpandedResponse struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Capacity        int                  `json:"capacity"`
	Specializations []string             `json:"specializations,omitempty"`
	Address         *AddressResponse     `json:"address,omitempty"`
	Responsible     *ResponsibleResponse `json:"responsible,omitempty"`
	Exercises       []ExerciseResponse   `json:"exercises,omitempty"`
	Description     *DescriptionResponse `json:"description,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}
