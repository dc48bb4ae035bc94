package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/SANDREQSA22/ebay-mz/internal/database"
	"github.com/SANDREQSA22/ebay-mz/internal/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origines filtrées par CORS en amont
	CheckOrigin: func(r *http.Request) bool { return true },
}

const wsPingInterval = 30 * time.Second

type cartSnapshot struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// CartWebSocket pousse l'état du panier au client à chaque modification.
// Le token JWT arrive en query string (pas d'en-tête Authorization sur
// un upgrade navigateur) ; les modifications sont signalées via le canal
// Redis "cart:<customer_id>".
func CartWebSocket(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token manquant"})
		return
	}

	rawID, _, err := middleware.ParseCustomerToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token invalide"})
		return
	}
	parsed, err := uuid.Parse(rawID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identité invalide"})
		return
	}
	customerID := gocql.UUID(parsed)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Upgrade WebSocket échoué: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	pubsub := database.Redis.Subscribe(ctx, "cart:"+customerID.String())
	defer pubsub.Close()

	// État initial dès la connexion
	if err := pushCartState(c, conn, customerID); err != nil {
		return
	}

	// Draine les messages entrants pour détecter la fermeture côté client
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	ch := pubsub.Channel()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if err := pushCartState(c, conn, customerID); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		}
	}
}

func pushCartState(c *gin.Context, conn *websocket.Conn, customerID gocql.UUID) error {
	ctx := c.Request.Context()

	cart, err := Carts.GetOrCreateCart(ctx, customerID)
	if err != nil {
		log.Printf("⚠️ Lecture panier WebSocket: %v", err)
		return err
	}
	lines, total, err := enrichCartLines(ctx, cart.ID)
	if err != nil {
		log.Printf("⚠️ Lecture lignes WebSocket: %v", err)
		return err
	}

	return conn.WriteJSON(cartSnapshot{Items: lines, Total: total})
}
