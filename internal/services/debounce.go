package services

import (
	"sync"
	"time"
)

// DefaultSearchDebounce задержка перед выборкой после последнего ввода.
const DefaultSearchDebounce = 500 * time.Millisecond

// Debouncer откладывает выполнение задачи до тех пор, пока ввод не будет
// стабилен в течение заданного интервала. Каждый новый вызов отменяет ещё не
// выполненную задачу и планирует новую; выборку запускает только та задача,
// которая дожила до срабатывания таймера.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer создает новый экземпляр Debouncer с заданной задержкой.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return &Debouncer{delay: delay}
}

// Call планирует выполнение задачи через задержку, отменяя предыдущую
// запланированную задачу, если та ещё не выполнилась.
func (d *Debouncer) Call(task func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, task)
}

// Stop отменяет запланированную задачу, если она есть.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
