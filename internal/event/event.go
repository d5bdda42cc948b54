// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие симуляции с необязательными данными
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс подписчика на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер событий.
// Подписчики получают событие прямо в момент Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher создаёт пустой диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe добавляет подписчика на событие указанного типа
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe убирает подписчика с события указанного типа
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			break
		}
	}
}

// Dispatch рассылает событие всем подписчикам его типа
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
