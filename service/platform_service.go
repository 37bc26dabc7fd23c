package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"bulk-product-editor/models"
)

// queryCatalogPage fetches the first catalog page with the representative image
// and the first 10 metafields per product
const queryCatalogPage = `
	query {
		products(first: 100) {
			edges {
				node {
					id
					title
					totalInventory
					media(first: 1) {
						edges {
							node {
								... on MediaImage {
									image {
										url
										altText
									}
								}
							}
						}
					}
					metafields(first: 10) {
						edges {
							node {
								namespace
								key
								value
							}
						}
					}
				}
			}
		}
	}
`

// queryProductsByIDs resolves staged identifiers to product snapshots.
// Deleted products come back as null nodes.
const queryProductsByIDs = `
	query ($productIds: [ID!]!) {
		nodes(ids: $productIds) {
			... on Product {
				id
				title
				totalInventory
				media(first: 1) {
					edges {
						node {
							... on MediaImage {
								image {
									url
									altText
								}
							}
						}
					}
				}
				metafields(first: 10) {
					edges {
						node {
							namespace
							key
							value
						}
					}
				}
			}
		}
	}
`

// mutationMetafieldsSet writes all entries of a batch in one call.
// userErrors are per-entry rejections, not a request failure.
const mutationMetafieldsSet = `
	mutation MetafieldsSet($metafields: [MetafieldsSetInput!]!) {
		metafieldsSet(metafields: $metafields) {
			metafields {
				namespace
				key
				value
			}
			userErrors {
				field
				message
				code
			}
		}
	}
`

// PlatformService talks to the commerce platform Admin GraphQL API
type PlatformService struct {
	endpoint    string
	accessToken string
	client      *http.Client
}

// NewPlatformService creates a new PlatformService.
// endpoint is the Admin GraphQL URL, accessToken the shop access token.
func NewPlatformService(endpoint, accessToken string) (*PlatformService, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("platform endpoint is not set")
	}
	if accessToken == "" {
		return nil, fmt.Errorf("platform access token is not set")
	}

	return &PlatformService{
		endpoint:    endpoint,
		accessToken: accessToken,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Ensure PlatformService implements PlatformServiceInterface
var _ PlatformServiceInterface = (*PlatformService)(nil)

// graphqlRequest is the request envelope sent to the Admin API
type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// graphqlError is a request-level error reported by the Admin API
type graphqlError struct {
	Message string `json:"message"`
}

// productNode mirrors the GraphQL product shape
type productNode struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	TotalInventory int    `json:"totalInventory"`
	Media          struct {
		Edges []struct {
			Node struct {
				Image struct {
					URL     string `json:"url"`
					AltText string `json:"altText"`
				} `json:"image"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"media"`
	Metafields struct {
		Edges []struct {
			Node models.Metafield `json:"node"`
		} `json:"edges"`
	} `json:"metafields"`
}

// toProduct converts a GraphQL product node to the snapshot model
func (n *productNode) toProduct() models.Product {
	product := models.Product{
		ID:             n.ID,
		Title:          n.Title,
		TotalInventory: n.TotalInventory,
	}
	for _, edge := range n.Media.Edges {
		if edge.Node.Image.URL == "" {
			continue
		}
		product.Images = append(product.Images, models.ProductImage{
			URL:     edge.Node.Image.URL,
			AltText: edge.Node.Image.AltText,
		})
	}
	for _, edge := range n.Metafields.Edges {
		product.Metafields = append(product.Metafields, edge.Node)
	}
	return product
}

// execute posts one GraphQL request and decodes the data payload into out.
// Every platform operation is exactly one round trip through here.
func (s *PlatformService) execute(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", s.accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach platform: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("platform returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode platform response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("platform request failed: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode platform data: %w", err)
	}
	return nil
}

// FetchCatalogPage fetches the first page of the catalog
func (s *PlatformService) FetchCatalogPage(ctx context.Context) ([]models.Product, error) {
	log.Printf("🔍 FetchCatalogPage: fetching catalog page from platform")

	var data struct {
		Products struct {
			Edges []struct {
				Node productNode `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}
	if err := s.execute(ctx, queryCatalogPage, nil, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch catalog page: %w", err)
	}

	products := make([]models.Product, 0, len(data.Products.Edges))
	for _, edge := range data.Products.Edges {
		node := edge.Node
		products = append(products, node.toProduct())
	}

	log.Printf("✓ FetchCatalogPage: fetched %d product/s", len(products))
	return products, nil
}

// FetchByIDs fetches product snapshots for the given identifiers.
// A staged identifier for a since-deleted product resolves to a null node and
// is silently omitted from the result.
func (s *PlatformService) FetchByIDs(ctx context.Context, productIDs []string) ([]models.Product, error) {
	if len(productIDs) == 0 {
		return []models.Product{}, nil
	}

	log.Printf("🔍 FetchByIDs: fetching %d product/s from platform", len(productIDs))

	var data struct {
		Nodes []*productNode `json:"nodes"`
	}
	variables := map[string]interface{}{"productIds": productIDs}
	if err := s.execute(ctx, queryProductsByIDs, variables, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch products by ids: %w", err)
	}

	products := make([]models.Product, 0, len(data.Nodes))
	dropped := 0
	for _, node := range data.Nodes {
		if node == nil || node.ID == "" {
			dropped++
			continue
		}
		products = append(products, node.toProduct())
	}
	if dropped > 0 {
		log.Printf("⏭️  FetchByIDs: dropped %d unresolvable id/s", dropped)
	}

	log.Printf("✓ FetchByIDs: fetched %d product/s", len(products))
	return products, nil
}

// SetMetafields submits the entries as one batched metafield upsert
func (s *PlatformService) SetMetafields(ctx context.Context, entries []models.MetafieldInput) ([]models.Metafield, []models.UserError, error) {
	log.Printf("📤 SetMetafields: submitting batch of %d entry/ies", len(entries))

	var data struct {
		MetafieldsSet struct {
			Metafields []models.Metafield `json:"metafields"`
			UserErrors []models.UserError `json:"userErrors"`
		} `json:"metafieldsSet"`
	}
	variables := map[string]interface{}{"metafields": entries}
	if err := s.execute(ctx, mutationMetafieldsSet, variables, &data); err != nil {
		return nil, nil, fmt.Errorf("failed to set metafields: %w", err)
	}

	written := data.MetafieldsSet.Metafields
	userErrors := data.MetafieldsSet.UserErrors
	if len(userErrors) > 0 {
		log.Printf("❌ SetMetafields: batch reported %d item error/s, first: %s", len(userErrors), userErrors[0].Message)
	} else {
		log.Printf("✓ SetMetafields: %d metafield/s written", len(written))
	}
	return written, userErrors, nil
}
