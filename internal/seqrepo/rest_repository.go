package seqrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ga4gh/vrs-go/internal/vrserr"
)

// RESTRepository serves sequences from a seqrepo REST service (the
// same wire protocol ga4gh/vrs/dataproxy.py's SeqRepoRESTDataProxy
// speaks), fetching /sequence and /metadata endpoints over net/http.
type RESTRepository struct {
	baseURL string
	client  *http.Client
}

// NewRESTRepository returns a Repository backed by the seqrepo REST
// service at baseURL (e.g. "https://seqrepo.example.org/seqrepo").
func NewRESTRepository(baseURL string) *RESTRepository {
	return &RESTRepository{baseURL: baseURL, client: http.DefaultClient}
}

func (r *RESTRepository) GetSequence(ctx context.Context, refgetAccession string, start, end int64) (string, error) {
	u := fmt.Sprintf("%s/sequence/%s?start=%d&end=%d", r.baseURL, url.PathEscape(refgetAccession), start, end)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", &vrserr.BackendUnavailableError{Backend: "seqrepo-rest", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", &vrserr.UnknownReferenceError{Identifier: refgetAccession}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &vrserr.BackendUnavailableError{Backend: "seqrepo-rest", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

type restMetadata struct {
	Length   int64    `json:"length"`
	Alphabet string   `json:"alphabet"`
	Aliases  []string `json:"aliases"`
}

func (r *RESTRepository) GetMetadata(ctx context.Context, refgetAccession string) (Metadata, error) {
	u := fmt.Sprintf("%s/metadata/%s", r.baseURL, url.PathEscape(refgetAccession))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Metadata{}, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return Metadata{}, &vrserr.BackendUnavailableError{Backend: "seqrepo-rest", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return Metadata{}, &vrserr.UnknownReferenceError{Identifier: refgetAccession}
	}
	if resp.StatusCode != http.StatusOK {
		return Metadata{}, &vrserr.BackendUnavailableError{Backend: "seqrepo-rest", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	var m restMetadata
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return Metadata{}, fmt.Errorf("decode metadata: %w", err)
	}
	return Metadata{
		Length:          m.Length,
		Alphabet:        m.Alphabet,
		Aliases:         m.Aliases,
		RefgetAccession: refgetAccession,
	}, nil
}

func (r *RESTRepository) TranslateSequenceIdentifier(ctx context.Context, alias string) (string, error) {
	u := fmt.Sprintf("%s/translate/%s", r.baseURL, url.PathEscape(alias))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", &vrserr.BackendUnavailableError{Backend: "seqrepo-rest", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", &vrserr.UnknownReferenceError{Identifier: alias}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &vrserr.BackendUnavailableError{Backend: "seqrepo-rest", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	var accessions []string
	if err := json.NewDecoder(resp.Body).Decode(&accessions); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}
	if len(accessions) == 0 {
		return "", &vrserr.UnknownReferenceError{Identifier: alias}
	}
	return accessions[0], nil
}
