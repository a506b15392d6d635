package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const tencentSmsEndpoint = "sms.tencentcloudapi.com"

type SmsService interface {
	SendVerificationCode(ctx context.Context, phone, code string) error
}

// TencentSmsService dispatches verification codes through the Tencent Cloud
// SMS API using the signed GET request form.
type TencentSmsService struct {
	secretID   string
	secretKey  string
	sdkAppID   string
	templateID string
	signName   string
	region     string
	httpClient *http.Client
}

func NewTencentSmsService(secretID, secretKey, sdkAppID, templateID, signName, region string) *TencentSmsService {
	return &TencentSmsService{
		secretID:   secretID,
		secretKey:  secretKey,
		sdkAppID:   sdkAppID,
		templateID: templateID,
		signName:   signName,
		region:     region,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type tencentSmsResponse struct {
	Response struct {
		Error *struct {
			Code    string `json:"Code"`
			Message string `json:"Message"`
		} `json:"Error"`
	} `json:"Response"`
}

func (s *TencentSmsService) SendVerificationCode(ctx context.Context, phone, code string) error {
	log.Printf("Sending SMS verification code to %s", phone)

	params := map[string]string{
		"Action":             "SendSms",
		"Version":            "2019-07-11",
		"Region":             s.region,
		"PhoneNumberSet.0":   phone,
		"TemplateId":         s.templateID,
		"SignName":           s.signName,
		"TemplateParamSet.0": code,
		"SmsSdkAppid":        s.sdkAppID,
		"SecretId":           s.secretID,
		"Timestamp":          fmt.Sprintf("%d", time.Now().Unix()),
		"Nonce":              fmt.Sprintf("%d", rand.Intn(1000000)),
		"SignatureMethod":    "HmacSHA256",
	}

	queryString := canonicalQueryString(params)
	stringToSign := "GET" + tencentSmsEndpoint + "/?" + queryString

	mac := hmac.New(sha256.New, []byte(s.secretKey))
	mac.Write([]byte(stringToSign))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	apiURL := "https://" + tencentSmsEndpoint + "/?" + queryString + "&Signature=" + url.QueryEscape(signature)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var smsResp tencentSmsResponse
	if err := json.Unmarshal(body, &smsResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if smsResp.Response.Error != nil {
		log.Printf("Tencent SMS API error: %s - %s", smsResp.Response.Error.Code, smsResp.Response.Error.Message)
		return fmt.Errorf("sms API error: %s", smsResp.Response.Error.Message)
	}

	log.Printf("SMS verification code sent to %s", phone)
	return nil
}

// canonicalQueryString sorts parameters by key, as the signature scheme
// requires byte-identical ordering between signer and verifier.
func canonicalQueryString(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, url.QueryEscape(key)+"="+url.QueryEscape(params[key]))
	}
	return strings.Join(pairs, "&")
}
