package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sahilchouksey/school-intake/utils/response"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
}

func NewAPIServer(listenAddress string) *APIServer {
	return &APIServer{
		app: fiber.New(fiber.Config{
			AppName:               "school-intake",
			ErrorHandler:          ErrorHandler,
			DisableStartupMessage: true,
		}),
		listenAddress: listenAddress,
	}
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	log.Infof("Server listening on %s", s.listenAddress)

	return s.app.Listen(s.listenAddress)
}

// Shutdown stops accepting connections and waits up to timeout for in-flight requests
func (s *APIServer) Shutdown(timeout time.Duration) error {
	log.Info("Shutting down API Server")
	return s.app.ShutdownWithTimeout(timeout)
}

// ErrorHandler turns unhandled errors into JSON replies.
// Anything that is not a *fiber.Error is a server fault and its detail is only logged.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := response.MsgInternalServer

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s failed (request %v): %v", c.Method(), c.Path(), c.Locals("requestid"), err)
	}

	return response.Error(c, code, message)
}
