package models

type Reminder struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"usuario_id"`
	Type        string `json:"tipo"`
	Description string `json:"descricao"`
	Date        string `json:"data"`
}
