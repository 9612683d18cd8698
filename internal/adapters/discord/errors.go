package discord

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/websocket"

	"github.com/jose-valero/nick-rotator-bot/internal/domain"
)

// close code del gateway para token inválido
const closeAuthenticationFailed = 4004

// toAPIError traduce un *discordgo.RESTError a *domain.APIError; el resto pasa igual.
func toAPIError(err error) error {
	var re *discordgo.RESTError
	if !errors.As(err, &re) {
		return err
	}
	ae := &domain.APIError{Err: err}
	if re.Response != nil {
		ae.Status = re.Response.StatusCode
	}
	if re.Message != nil {
		ae.Code = re.Message.Code
		ae.Message = re.Message.Message
	}
	return ae
}

// IsInvalidToken detecta un login rechazado por credencial inválida.
func IsInvalidToken(err error) bool {
	if err == nil {
		return false
	}
	var ce *websocket.CloseError
	if errors.As(err, &ce) && ce.Code == closeAuthenticationFailed {
		return true
	}
	var re *discordgo.RESTError
	if errors.As(err, &re) && re.Response != nil && re.Response.StatusCode == http.StatusUnauthorized {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "authentication failed") || strings.Contains(msg, "token_invalid")
}
