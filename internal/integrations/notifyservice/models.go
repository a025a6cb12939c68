package notifyservice

// notifyRequest тело запроса на создание уведомления
type notifyRequest struct {
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}
