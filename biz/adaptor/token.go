package adaptor

import (
	"class-booking/biz/application/dto/basic"
	"class-booking/biz/infrastructure/config"
	"class-booking/biz/infrastructure/consts"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/mitchellh/mapstructure"
)

// JwtSigner 签发与校验HS256令牌, 令牌只携带邮箱
type JwtSigner struct {
	secret []byte
	expire time.Duration
	now    func() time.Time
}

func NewJwtSigner(config *config.Config) *JwtSigner {
	expire := config.Auth.AccessExpire
	if expire <= 0 {
		expire = consts.DefaultAccessExpire
	}
	return NewJwtSignerWithSecret(config.Auth.SecretKey, time.Duration(expire)*time.Second)
}

func NewJwtSignerWithSecret(secret string, expire time.Duration) *JwtSigner {
	return &JwtSigner{
		secret: []byte(secret),
		expire: expire,
		now:    time.Now,
	}
}

// Issue 生成jwt, 返回令牌与过期时间戳
func (s *JwtSigner) Issue(email string) (string, int64, error) {
	iat := s.now()
	exp := iat.Add(s.expire).Unix()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   iat.Unix(),
		"exp":   exp,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}

// Verify 签名错误、格式错误、过期或缺少邮箱时均返回 consts.ErrInvalidToken
func (s *JwtSigner) Verify(tokenString string) (*basic.UserMeta, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, consts.ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, consts.ErrInvalidToken
	}
	meta := new(basic.UserMeta)
	if err = mapstructure.Decode(map[string]any(claims), meta); err != nil || meta.Email == "" {
		return nil, consts.ErrInvalidToken
	}
	return meta, nil
}
