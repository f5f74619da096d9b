package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"chat_schedule/internal/models"
	"chat_schedule/internal/repository"
)

// Session 代表一個 WebSocket 客戶端連接
// 每個連線在建立時分配一個不透明的唯一識別碼，斷線後識別碼即失效
type Session struct {
	ID       string              // 連線識別碼
	Conn     *websocket.Conn     // WebSocket 連接
	SendChan chan *OutboundEvent // 事件發送通道，用於異步傳送事件
}

// Event 代表客戶端送來的具名事件
// 所有事件都使用 {"event": 名稱, "data": 內容} 的封包格式
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// OutboundEvent 代表伺服器要發送給客戶端的事件
type OutboundEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// ChatPayload 定義 chat 事件的輸入結構
type ChatPayload struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// ChatMessage 定義回傳給發送者的 chat-message 事件內容
// 時間戳記由伺服器在處理當下產生，不採用客戶端提供的值
type ChatMessage struct {
	UserID    string `json:"userId"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ScheduleResponse 定義 schedule-response 事件內容
type ScheduleResponse struct {
	Success bool             `json:"success"`
	Data    *models.Schedule `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type handlerFunc func(session *Session, data json.RawMessage)

// WebSocketManager 管理所有的 WebSocket 連接和事件分發
type WebSocketManager struct {
	sessions      map[string]*Session // 連線識別碼 -> Session
	sessionsMux   sync.RWMutex        // 用於保護 sessions map 的讀寫鎖
	handlers      map[string]handlerFunc
	scheduleRepo  repository.ScheduleRepository
	createTimeout time.Duration // 建立排程的逾時時間
}

// NewWebSocketManager 創建並初始化新的 WebSocket 管理器
func NewWebSocketManager(scheduleRepo repository.ScheduleRepository) *WebSocketManager {
	m := &WebSocketManager{
		sessions:      make(map[string]*Session),
		scheduleRepo:  scheduleRepo,
		createTimeout: 10 * time.Second,
	}

	// 註冊具名事件對應的處理函數
	m.handlers = map[string]handlerFunc{
		"chat":     m.handleChat,
		"schedule": m.handleSchedule,
	}

	return m
}

// SetCreateTimeout 調整建立排程的逾時時間
func (m *WebSocketManager) SetCreateTimeout(d time.Duration) {
	if d > 0 {
		m.createTimeout = d
	}
}

// HandleSession 處理新的 WebSocket 連接請求
// 此方法會阻塞直到連線關閉
func (m *WebSocketManager) HandleSession(conn *websocket.Conn) {
	session := &Session{
		ID:       uuid.NewString(),
		Conn:     conn,
		SendChan: make(chan *OutboundEvent, 256), // 設置緩衝大小為 256 的事件通道
	}

	m.addSession(session)

	// 確保連接關閉時清理資源
	defer func() {
		m.removeSession(session)
		conn.Close()
		close(session.SendChan)
	}()

	// 啟動讀寫處理
	go m.writePump(session)
	m.readPump(session)
}

// readPump 持續監聽並處理從客戶端接收的事件
func (m *WebSocketManager) readPump(session *Session) {
	session.Conn.SetReadLimit(4096) // 設置最大消息大小為 4KB
	session.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	session.Conn.SetPongHandler(func(string) error {
		session.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := session.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			break
		}

		// 解析接收到的事件封包
		var evt Event
		if err := json.Unmarshal(message, &evt); err != nil {
			log.Printf("event parse error: %v", err)
			continue
		}

		m.dispatch(session, evt)
	}
}

// writePump 處理向客戶端發送事件的邏輯
func (m *WebSocketManager) writePump(session *Session) {
	// 設置心跳檢查計時器
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-session.SendChan:
			// 設置寫入超時
			session.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				session.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// 獲取寫入器並發送事件
			w, err := session.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}

			// JSON 編碼
			eventBytes, err := json.Marshal(event)
			if err != nil {
				log.Printf("event encoding error: %v", err)
				continue
			}

			if _, err := w.Write(eventBytes); err != nil {
				return
			}
			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			// 發送心跳包
			session.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := session.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// dispatch 根據事件名稱分發給對應的處理函數
func (m *WebSocketManager) dispatch(session *Session, evt Event) {
	handler, ok := m.handlers[evt.Event]
	if !ok {
		log.Printf("unknown event %q from %s", evt.Event, session.ID)
		return
	}
	handler(session, evt.Data)
}

// handleChat 處理 chat 事件
// 只把訊息回送給發送者本人，不廣播給其他連線
func (m *WebSocketManager) handleChat(session *Session, data json.RawMessage) {
	var payload ChatPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("chat payload parse error: %v", err)
		return
	}

	// 缺少 userId 的訊息直接忽略，不回傳錯誤
	if payload.UserID == "" {
		return
	}

	m.emit(session, &OutboundEvent{
		Event: "chat-message",
		Data: ChatMessage{
			UserID:    payload.UserID,
			Message:   payload.Message,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		},
	})
}

// handleSchedule 處理 schedule 事件
// 嘗試建立排程記錄，無論成功或失敗都以 schedule-response 回應發送者
func (m *WebSocketManager) handleSchedule(session *Session, data json.RawMessage) {
	var schedule models.Schedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		log.Printf("Error creating schedule: %v", err)
		m.emitScheduleFailure(session)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.createTimeout)
	defer cancel()

	if err := m.scheduleRepo.Create(ctx, &schedule); err != nil {
		log.Printf("Error creating schedule: %v", err)
		m.emitScheduleFailure(session)
		return
	}

	m.emit(session, &OutboundEvent{
		Event: "schedule-response",
		Data: ScheduleResponse{
			Success: true,
			Data:    &schedule,
		},
	})
}

// emitScheduleFailure 回傳固定格式的排程失敗回應
// 持久層的錯誤細節只留在伺服器端日誌，不會傳給客戶端
func (m *WebSocketManager) emitScheduleFailure(session *Session) {
	m.emit(session, &OutboundEvent{
		Event: "schedule-response",
		Data: ScheduleResponse{
			Success: false,
			Error:   "Failed to create schedule",
		},
	})
}

// emit 將事件加入指定連線的發送隊列
func (m *WebSocketManager) emit(session *Session, event *OutboundEvent) {
	select {
	case session.SendChan <- event:
		// 事件成功加入發送隊列
	default:
		// 連線的事件隊列已滿，關閉連接
		m.removeSession(session)
		session.Conn.Close()
	}
}

// addSession 安全地添加新的連線
func (m *WebSocketManager) addSession(session *Session) {
	m.sessionsMux.Lock()
	defer m.sessionsMux.Unlock()

	m.sessions[session.ID] = session
	log.Printf("User connected: %s", session.ID)
}

// removeSession 安全地移除連線
func (m *WebSocketManager) removeSession(session *Session) {
	m.sessionsMux.Lock()
	defer m.sessionsMux.Unlock()

	if _, ok := m.sessions[session.ID]; ok {
		delete(m.sessions, session.ID)
		log.Printf("User disconnected: %s", session.ID)
	}
}

// SessionCount 獲取目前在線的連線數量
func (m *WebSocketManager) SessionCount() int {
	m.sessionsMux.RLock()
	defer m.sessionsMux.RUnlock()

	return len(m.sessions)
}
