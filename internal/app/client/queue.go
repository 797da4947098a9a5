package client

import (
	"database/sql"
	"encoding/json"
	"fmt"
	gosync "sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"pixelz/internal/domain/event"
)

// EventQueue — долговечная FIFO-очередь неподтвержденных событий на
// стороне клиента. Порядок очереди равен порядку добавления и порядку
// отправки; очередь никогда не переупорядочивает. Ключи назначаются
// монотонно при добавлении, переживают перезапуск и не переиспользуются
// (AUTOINCREMENT).
//
// SQLite-файл не защищен от конкурентного доступа из нескольких
// горутин этим кодом выше, поэтому мьютекс обязателен.
type EventQueue struct {
	db *sql.DB
	mu gosync.Mutex
}

// QueueEntry — событие с локальным порядковым ключом.
type QueueEntry struct {
	Seq   int64
	Event event.Event
}

func NewEventQueue(path string) (*EventQueue, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=FULL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	q := &EventQueue{db: db}
	if err := q.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return q, nil
}

func (q *EventQueue) initTables() error {
	_, err := q.db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL,
			payload TEXT NOT NULL,
			client_timestamp INTEGER,
			created_at DATETIME NOT NULL
		);
	`)

	return err
}

// Append валидирует событие и записывает его в очередь. Возврат без
// ошибки гарантирует, что событие долговечно сохранено; сеть здесь не
// трогается никогда.
func (q *EventQueue) Append(ev event.Event) error {
	if err := ev.Validate(); err != nil {
		return fmt.Errorf("событие не прошло валидацию: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	var ts any
	if ev.ClientTimestamp != nil {
		ts = *ev.ClientTimestamp
	}

	_, err := q.db.Exec(`
		INSERT INTO events (type, payload, client_timestamp, created_at)
		VALUES (?, ?, ?, ?)
	`, string(ev.Type), string(ev.Payload), ts, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("ошибка сохранения события: %w", err)
	}

	return nil
}

// PeekAll возвращает все ожидающие события, старые первыми, не удаляя
// их. Повторные вызовы без мутаций дают тот же результат.
func (q *EventQueue) PeekAll() ([]event.Event, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entries, err := q.peekEntries()
	if err != nil {
		return nil, err
	}

	events := make([]event.Event, len(entries))
	for i, entry := range entries {
		events[i] = entry.Event
	}
	return events, nil
}

// PeekEntries — как PeekAll, но с порядковыми ключами (для вывода
// очереди в CLI).
func (q *EventQueue) PeekEntries() ([]QueueEntry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.peekEntries()
}

func (q *EventQueue) peekEntries() ([]QueueEntry, error) {
	rows, err := q.db.Query(`
		SELECT id, type, payload, client_timestamp
		FROM events
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения очереди: %w", err)
	}
	defer rows.Close()

	var entries []QueueEntry
	for rows.Next() {
		var (
			entry   QueueEntry
			typ     string
			payload string
			ts      sql.NullInt64
		)
		if err := rows.Scan(&entry.Seq, &typ, &payload, &ts); err != nil {
			return nil, fmt.Errorf("ошибка сканирования события: %w", err)
		}
		entry.Event = event.Event{
			Type:    event.Type(typ),
			Payload: json.RawMessage(payload),
		}
		if ts.Valid {
			v := ts.Int64
			entry.Event.ClientTimestamp = &v
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода очереди: %w", err)
	}

	return entries, nil
}

// RemoveFirstN удаляет ровно n самых старых записей. n больше длины
// очереди безопасно: удаляется все. Это единственный примитив удаления,
// которым пользуется синхронизация после ответа сервера — протокол
// отказов позиционный, удалять по идентичности события нельзя.
func (q *EventQueue) RemoveFirstN(n int) error {
	if n <= 0 {
		return nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	_, err := q.db.Exec(`
		DELETE FROM events WHERE id IN (
			SELECT id FROM events ORDER BY id ASC LIMIT ?
		)
	`, n)
	if err != nil {
		return fmt.Errorf("ошибка удаления событий: %w", err)
	}

	return nil
}

// Count возвращает число ожидающих событий.
func (q *EventQueue) Count() (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var count int
	if err := q.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчета очереди: %w", err)
	}
	return count, nil
}

func (q *EventQueue) Close() error {
	return q.db.Close()
}
