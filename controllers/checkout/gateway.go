package checkoutControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
)

// gatewayResponse is the payment gateway's create-session reply.
type gatewayResponse struct {
	Order struct {
		Ref string `json:"ref"`
		URL string `json:"url"`
	} `json:"order"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// getGatewayConfig picks the production endpoint; sandbox/dev flips test
// mode on the live endpoint.
func getGatewayConfig() (storeID int, authKey, apiURL string, testMode int, err error) {
	storeID, _ = strconv.Atoi(os.Getenv("PAY_STORE_ID"))
	authKey = os.Getenv("PAY_AUTH_KEY")
	apiURL = os.Getenv("PAY_API_URL")
	testMode = 0

	mode := os.Getenv("PAY_MODE")
	if mode == "sandbox" || mode == "dev" {
		testMode = 1
	}

	if storeID == 0 || authKey == "" || apiURL == "" {
		return 0, "", "", 0, fmt.Errorf("payment gateway configuration missing")
	}
	return storeID, authKey, apiURL, testMode, nil
}

// createGatewaySession asks the gateway for a hosted payment page and
// returns its redirect URL and reference.
func createGatewaySession(checkoutRef, amount, currency, description, name, email string) (string, string, error) {
	storeID, authKey, apiURL, testMode, err := getGatewayConfig()
	if err != nil {
		return "", "", err
	}

	payload := map[string]interface{}{
		"method":  "create",
		"store":   storeID,
		"authkey": authKey,
		"order": map[string]interface{}{
			"cartid":      checkoutRef,
			"test":        testMode,
			"amount":      amount,
			"currency":    currency,
			"description": description,
		},
		"customer": map[string]interface{}{
			"name":  name,
			"email": email,
		},
		"return": map[string]string{
			"authorised": os.Getenv("PAY_SUCCESS_URL"),
			"declined":   os.Getenv("PAY_FAILURE_URL"),
			"cancelled":  os.Getenv("PAY_CANCEL_URL"),
		},
	}

	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to reach payment gateway: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("payment gateway error (%d): %s", resp.StatusCode, string(body))
	}

	var gwResp gatewayResponse
	if err := json.Unmarshal(body, &gwResp); err != nil {
		return "", "", fmt.Errorf("failed to parse gateway response: %v", err)
	}
	if gwResp.Error != nil {
		return "", "", fmt.Errorf("gateway error: %s", gwResp.Error.Message)
	}
	if gwResp.Order.URL == "" {
		return "", "", fmt.Errorf("gateway returned empty payment URL")
	}

	return gwResp.Order.URL, gwResp.Order.Ref, nil
}
