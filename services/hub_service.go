package services

import (
	"encoding/json"
	"log"

	"quill/models"
)

// HubService fans newly created comments out to websocket subscribers
// of the affected post.
type HubService struct {
	hub *models.Hub
}

func NewHubService() *HubService {
	hub := models.NewHub()
	service := &HubService{hub: hub}

	go service.Run()

	return service
}

func (h *HubService) GetHub() *models.Hub {
	return h.hub
}

func (h *HubService) Run() {
	for {
		select {
		case client := <-h.hub.Register:
			h.registerClient(client)

		case client := <-h.hub.Unregister:
			h.unregisterClient(client)

		case msg := <-h.hub.Deliver:
			h.deliverToPost(msg)
		}
	}
}

func (h *HubService) registerClient(client *models.Client) {
	h.hub.Clients[client] = true
	h.hub.PostClients[client.PostID] = append(h.hub.PostClients[client.PostID], client)
}

func (h *HubService) unregisterClient(client *models.Client) {
	if _, ok := h.hub.Clients[client]; !ok {
		return
	}

	delete(h.hub.Clients, client)
	close(client.Send)

	clients := h.hub.PostClients[client.PostID]
	for i, c := range clients {
		if c == client {
			h.hub.PostClients[client.PostID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.hub.PostClients[client.PostID]) == 0 {
		delete(h.hub.PostClients, client.PostID)
	}
}

// BroadcastToPost queues a typed message for every subscriber of the
// post's comment feed. Delivery happens on the hub goroutine, which is
// the only owner of the subscriber maps.
func (h *HubService) BroadcastToPost(postID uint, messageType string, data interface{}) {
	wsMessage := models.WSMessage{
		Type: messageType,
		Data: data,
	}

	messageBytes, err := json.Marshal(wsMessage)
	if err != nil {
		log.Printf("Error marshaling websocket message: %v", err)
		return
	}

	h.hub.Deliver <- models.PostMessage{PostID: postID, Payload: messageBytes}
}

func (h *HubService) deliverToPost(msg models.PostMessage) {
	for _, client := range h.hub.PostClients[msg.PostID] {
		select {
		case client.Send <- msg.Payload:
		default:
			// Buffer full; the client is falling behind, skip it.
		}
	}
}
