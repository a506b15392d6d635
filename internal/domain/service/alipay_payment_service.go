package service

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"log"
	"net/url"
	"sort"
	"strings"
	"time"
)

// AlipayPaymentService builds signed page-pay form URLs for the Alipay
// gateway. The client submits the returned URL; settlement callbacks land on
// notifyURL and are handled by the gateway, not by this service.
type AlipayPaymentService struct {
	appID      string
	gatewayURL string
	returnURL  string
	notifyURL  string
	privateKey *rsa.PrivateKey
}

func NewAlipayPaymentService(appID, gatewayURL, returnURL, notifyURL, privateKeyPEM string) (*AlipayPaymentService, error) {
	s := &AlipayPaymentService{
		appID:      appID,
		gatewayURL: gatewayURL,
		returnURL:  returnURL,
		notifyURL:  notifyURL,
	}

	if privateKeyPEM != "" {
		key, err := parsePrivateKey(privateKeyPEM)
		if err != nil {
			return nil, fmt.Errorf("failed to parse alipay private key: %w", err)
		}
		s.privateKey = key
	} else {
		log.Printf("AlipayPaymentService: no private key configured, requests will carry a development signature")
	}

	return s, nil
}

type alipayBizContent struct {
	OutTradeNo  string `json:"out_trade_no"`
	ProductCode string `json:"product_code"`
	TotalAmount string `json:"total_amount"`
	Subject     string `json:"subject"`
}

func (s *AlipayPaymentService) CreatePagePayment(ctx context.Context, req PaymentGatewayRequest) (*PaymentGatewayResponse, error) {
	log.Printf("Creating Alipay page payment for trade %s, amount %s", req.OutTradeNo, req.Amount)

	bizContent, err := json.Marshal(alipayBizContent{
		OutTradeNo:  req.OutTradeNo,
		ProductCode: "FAST_INSTANT_TRADE_PAY",
		TotalAmount: req.Amount,
		Subject:     req.Subject,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal biz_content: %w", err)
	}

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = s.returnURL
	}

	// The gateway expects "yyyy-MM-dd HH:mm:ss" in its own timezone.
	params := map[string]string{
		"app_id":      s.appID,
		"method":      "alipay.trade.page.pay",
		"charset":     "utf-8",
		"sign_type":   "RSA2",
		"timestamp":   time.Now().Format("2006-01-02 15:04:05"),
		"version":     "1.0",
		"notify_url":  s.notifyURL,
		"return_url":  returnURL,
		"biz_content": string(bizContent),
	}

	sign, err := s.sign(params)
	if err != nil {
		return nil, err
	}
	params["sign"] = sign

	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}

	resp := &PaymentGatewayResponse{
		FormURL: s.gatewayURL + "?" + values.Encode(),
		OrderID: req.OutTradeNo,
	}

	log.Printf("Alipay page payment created for trade %s", req.OutTradeNo)
	return resp, nil
}

// sign produces the RSA2 signature over the sorted key=value string. Without
// a configured key a placeholder is used so the flow stays testable locally.
func (s *AlipayPaymentService) sign(params map[string]string) (string, error) {
	if s.privateKey == nil {
		return "simulated_signature_for_development", nil
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	digest := sha256.Sum256([]byte(strings.Join(pairs, "&")))
	signature, err := rsa.SignPKCS1v15(rand.Reader, s.privateKey, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("failed to sign alipay request: %w", err)
	}

	return base64.StdEncoding.EncodeToString(signature), nil
}

func parsePrivateKey(pemData string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA private key")
	}
	return key, nil
}
