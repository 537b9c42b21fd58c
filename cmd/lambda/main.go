package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"consultanit/cmd/internal/config"
	"consultanit/cmd/internal/contract"
	"consultanit/cmd/internal/http/handler"
	"consultanit/cmd/internal/infrastructure/datosgov"
	"consultanit/cmd/internal/infrastructure/rues"
	"consultanit/cmd/internal/service"
	"consultanit/cmd/internal/utils/apierror"
	"consultanit/cmd/internal/utils/validators"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

var headers = map[string]string{
	"Content-Type": "application/json",
}

func main() {
	validate := validator.New()
	_ = validate.RegisterValidation("nit", validators.IsNIT)

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}

	nitService := service.NewNitService(
		datosgov.NewClient(cfg.DatosGovURL),
		rues.NewClient(cfg.RuesURL),
	)

	route := handler.NewNitRoute(nitService, validate)
	lambda.Start(newHandler(route))
}

type resolver interface {
	Resolve(ctx context.Context, req *contract.NitRequest) (int, any)
}

// newHandler adapts an API Gateway proxy event to the NIT route.
// The NIT is read from the query string, the path, or a JSON body, in that order.
func newHandler(route resolver) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		log.Info("NIT lookup function received a request")

		req := contract.NitRequest{
			NIT: event.QueryStringParameters["nit"],
		}
		if strings.TrimSpace(req.NIT) == "" {
			req.NIT = event.PathParameters["nit"]
		}

		if strings.TrimSpace(req.NIT) == "" && event.Body != "" {
			body := []byte(event.Body)
			if event.IsBase64Encoded {
				decoded, err := base64.StdEncoding.DecodeString(event.Body)
				if err != nil {
					return respond(http.StatusBadRequest, apierror.MalformedJSONError), nil
				}
				body = decoded
			}

			if err := json.Unmarshal(body, &req); err != nil {
				return respond(http.StatusBadRequest, apierror.MalformedJSONError), nil
			}
		}

		status, body := route.Resolve(ctx, &req)
		return respond(status, body), nil
	}
}

func respond(status int, body any) events.APIGatewayProxyResponse {
	data, err := json.Marshal(body)
	if err != nil {
		log.Errorf("failed to serialize response: %v", err)
		status = http.StatusInternalServerError
		data, _ = json.Marshal(apierror.InternalServerError)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(data),
	}
}
