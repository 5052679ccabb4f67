// Package backendclient acessa a API de tabelas (estilo PostgREST) do backend
// hospedado onde ficam as vendas, serviços, faturas e produtos.
package backendclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultPageLimit = 1000

type Client interface {
	// Select busca uma página da tabela e decodifica o array JSON em out
	Select(ctx context.Context, table string, query Query, out any) error
	// Count devolve a quantidade exata de linhas que atendem aos filtros
	Count(ctx context.Context, table string, filters ...Filter) (int, error)
	PageLimit() int
}

// HTTPError é devolvido quando o backend responde com status fora de 2xx
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend respondeu com status %d: %s", e.StatusCode, e.Body)
}

type BackendClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	pageLimit  int
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Backend.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.Backend.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.Backend.RequestsPerSecond)
	}

	burst := cfg.Backend.Burst
	if burst <= 0 {
		burst = 1
	}

	pageLimit := cfg.Backend.PageLimit
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}

	return &BackendClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   strings.TrimRight(cfg.Backend.URL, "/"),
		apiKey:    cfg.Backend.APIKey,
		limiter:   rate.NewLimiter(limit, burst),
		pageLimit: pageLimit,
	}
}

func (c *BackendClient) PageLimit() int {
	return c.pageLimit
}

func (c *BackendClient) Select(ctx context.Context, table string, query Query, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, table, query.values())
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req, table)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar a resposta de %s", table)
	}

	return nil
}

func (c *BackendClient) Count(ctx context.Context, table string, filters ...Filter) (int, error) {
	query := Query{Select: "*", Filters: filters}

	req, err := c.newRequest(ctx, http.MethodHead, table, query.values())
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")

	resp, err := c.do(req, table)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	total, err := ParseContentRange(resp.Header.Get("Content-Range"))
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao contar linhas de %s", table)
	}

	return total, nil
}

func (c *BackendClient) newRequest(ctx context.Context, method, table string, values url.Values) (*http.Request, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/rest/v1", table)
	endpoint.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	return req, nil
}

func (c *BackendClient) do(req *http.Request, table string) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, errors.Wrap(err, "limite de requisições ao backend")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveBackendRequest(table, 0, time.Since(start))
		return nil, errors.Wrapf(err, "erro ao executar a requisição para %s", table)
	}
	metrics.ObserveBackendRequest(table, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return resp, nil
}

// ParseContentRange extrai o total de um cabeçalho Content-Range ("0-24/137" ou "*/0")
func ParseContentRange(header string) (int, error) {
	idx := strings.LastIndex(header, "/")
	if idx < 0 {
		return 0, fmt.Errorf("content-range inválido: %q", header)
	}

	total := header[idx+1:]
	if total == "*" {
		return 0, fmt.Errorf("content-range sem total: %q", header)
	}

	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("content-range inválido: %q", header)
	}

	return n, nil
}

// DefaultOrder é a ordenação usada na paginação quando a consulta não informa uma.
// Sem ordem total o offset pode pular ou repetir linhas entre páginas.
const DefaultOrder = "id.asc"

// SelectAll percorre todas as páginas da tabela até receber uma página incompleta
func SelectAll[T any](ctx context.Context, c Client, table string, query Query) ([]T, error) {
	if query.Order == "" {
		query.Order = DefaultOrder
	}

	pageLimit := c.PageLimit()
	if query.Limit > 0 && query.Limit < pageLimit {
		pageLimit = query.Limit
	}

	result := make([]T, 0)
	for offset := 0; ; offset += pageLimit {
		page := make([]T, 0)
		pageQuery := query
		pageQuery.Limit = pageLimit
		pageQuery.Offset = offset

		if err := c.Select(ctx, table, pageQuery, &page); err != nil {
			return nil, err
		}

		result = append(result, page...)

		if len(page) < pageLimit || (query.Limit > 0 && len(result) >= query.Limit) {
			break
		}
	}

	if query.Limit > 0 && len(result) > query.Limit {
		result = result[:query.Limit]
	}

	return result, nil
}
