package model

// Prioridade is the task priority scale used by the API.
type Prioridade string

const (
	PrioridadeVermelha Prioridade = "vermelha"
	PrioridadeAmarela  Prioridade = "amarela"
	PrioridadeVerde    Prioridade = "verde"
)

func (p Prioridade) Valid() bool {
	switch p {
	case PrioridadeVermelha, PrioridadeAmarela, PrioridadeVerde:
		return true
	}
	return false
}

// Tarefa belongs to exactly one Usuario. DonoID is set at creation and
// never reassigned.
type Tarefa struct {
	ID             int64      `json:"id"`
	Titulo         string     `json:"titulo"`
	Descricao      *string    `json:"descricao"`
	Concluida      bool       `json:"concluida"`
	DataVencimento *Date      `json:"data_vencimento"`
	Prioridade     Prioridade `json:"prioridade"`
	DonoID         int64      `json:"dono_id"`
}
