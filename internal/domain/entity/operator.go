package entity

// OperatorState состояние оператора в диалоге с ботом
type OperatorState string

const (
	StateMainMenu      OperatorState = "main_menu"      // В главном меню
	StateAwaitingPhoto OperatorState = "awaiting_photo" // Ожидание кадра пластины
	StateProcessing    OperatorState = "processing"     // Идёт инспекция
)

// Operator оператор стенда, присылающий кадры через бота
type Operator struct {
	ID     int64         // Telegram User ID
	ChatID int64         // Telegram Chat ID
	State  OperatorState // Текущее состояние

	Passed       int    // деталей в допуске
	Failed       int    // деталей вне допуска
	Inconclusive int    // прерванных циклов
	LastCycleID  string // последний цикл инспекции
}

// NewOperator создаёт оператора в главном меню
func NewOperator(userID, chatID int64) *Operator {
	return &Operator{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние оператора
func (o *Operator) SetState(state OperatorState) {
	o.State = state
}

// Record учитывает итог инспекции в счётчиках
func (o *Operator) Record(result *InspectionResult) {
	if result == nil {
		return
	}
	switch result.Status {
	case StatusPass:
		o.Passed++
	case StatusFail:
		o.Failed++
	default:
		o.Inconclusive++
	}
	o.LastCycleID = result.CycleID
}

// Total возвращает число проверенных кадров
func (o *Operator) Total() int {
	return o.Passed + o.Failed + o.Inconclusive
}
