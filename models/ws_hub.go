package models

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Hub struct {
	Clients     map[*Client]bool
	Register    chan *Client
	Unregister  chan *Client
	Deliver     chan PostMessage
	PostClients map[uint][]*Client
}

// PostMessage is a payload addressed to one post's subscribers.
type PostMessage struct {
	PostID  uint
	Payload []byte
}

// Client is a websocket subscriber to one post's comment feed.
type Client struct {
	ID     string
	Hub    *Hub
	Conn   *websocket.Conn
	Send   chan []byte
	UserID uint
	PostID uint
}

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func NewHub() *Hub {
	return &Hub{
		Clients:     make(map[*Client]bool),
		Register:    make(chan *Client),
		Unregister:  make(chan *Client),
		Deliver:     make(chan PostMessage, 64),
		PostClients: make(map[uint][]*Client),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, userID, postID uint) *Client {
	return &Client{
		ID:     uuid.New().String(),
		Hub:    hub,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		UserID: userID,
		PostID: postID,
	}
}
