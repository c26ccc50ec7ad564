package services

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// Pusher отправляет push-уведомление на устройство родителя.
// Доставка best-effort: ошибка не влияет на результат привязки.
type Pusher interface {
	SendToDevice(deviceToken, title, body string, data map[string]string) error
}

type PushService struct {
	FCMClient *messaging.Client
}

// NewPushService создает клиент Firebase Cloud Messaging
func NewPushService(app *firebase.App) (*PushService, error) {
	ctx := context.Background()
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing FCM client: %w", err)
	}

	return &PushService{FCMClient: client}, nil
}

func (s *PushService) SendToDevice(deviceToken, title, body string, data map[string]string) error {
	if deviceToken == "" {
		return nil // нет токена устройства, пропускаем отправку
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:  data,
		Token: deviceToken,
	}

	ctx := context.Background()
	resp, err := s.FCMClient.Send(ctx, message)
	if err != nil {
		log.Printf("[FCM] Ошибка отправки уведомления: %v", err)
		return err
	}

	log.Printf("[FCM] Уведомление отправлено. ID: %s, Title: %s", resp, title)
	return nil
}
