package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/okastran/dnsling/internal/config"
	"github.com/okastran/dnsling/pkg/dns"
)

// Server answers a single DNS datagram over UDP. The socket is bound at
// construction time; ServeOnce performs one receive/reply cycle and the
// process is expected to exit afterwards.
type Server struct {
	config *config.Config
	conn   *net.UDPConn

	static []byte

	mu     sync.Mutex
	closed bool
}

// New binds the UDP socket and assembles the canned response packet. A
// nil config falls back to the defaults.
func New(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	static, err := buildStaticResponse(&cfg.Response)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}

	addr, err := net.ResolveUDPAddr("udp", cfg.Server.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve UDP address: %w", err)
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on UDP: %w", err)
	}

	log.Debug().
		Str("address", conn.LocalAddr().String()).
		Msg("UDP socket bound")

	return &Server{
		config: cfg,
		conn:   conn,
		static: static,
	}, nil
}

// NewWithDefaults builds a server from the default configuration.
func NewWithDefaults() (*Server, error) {
	return New(config.DefaultConfig())
}

// Addr reports the bound address, useful when the configured port is 0.
func (s *Server) Addr() *net.UDPAddr {
	return s.conn.LocalAddr().(*net.UDPAddr)
}

// ServeOnce receives one datagram, replies to its sender and returns.
// Socket failures are returned to the caller; malformed queries are not:
// a response is sent regardless of what the client transmitted.
func (s *Server) ServeOnce() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("server has been closed")
	}
	s.mu.Unlock()

	buf := make([]byte, s.config.Server.BufferSize)

	n, clientAddr, err := s.conn.ReadFromUDP(buf)
	if err != nil {
		return fmt.Errorf("failed to receive datagram: %w", err)
	}

	request := buf[:n]

	log.Info().
		Str("client", clientAddr.String()).
		Int("bytes", n).
		Msg("Received datagram")
	logPacket("request", request)

	response := s.buildResponse(request)
	logPacket("response", response)

	if _, err := s.conn.WriteToUDP(response, clientAddr); err != nil {
		return fmt.Errorf("failed to send response to %s: %w", clientAddr, err)
	}

	log.Info().
		Str("client", clientAddr.String()).
		Int("bytes", len(response)).
		Msg("Sent response")

	return nil
}

// buildResponse picks the reply for a request. In echo mode the request's
// question section is parsed and mirrored back; anything unparseable
// falls back to the canned response.
func (s *Server) buildResponse(request []byte) []byte {
	if !s.config.Server.EchoRequest {
		return s.static
	}

	msg, err := dns.NewDNSMessageFromBytes(request)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to parse request, sending canned response")
		return s.static
	}

	reply, err := dns.GenerateDNSResponse(msg).ToBytes()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode echo response, sending canned response")
		return s.static
	}

	return reply
}

// buildStaticResponse assembles the fixed reply packet: a response-flagged
// header carrying the configured id, followed by the configured question.
func buildStaticResponse(cfg *config.ResponseConfig) ([]byte, error) {
	respType, err := dns.DNSTypeFromString(cfg.Type)
	if err != nil {
		return nil, err
	}

	respClass, err := dns.DNSClassFromString(cfg.Class)
	if err != nil {
		return nil, err
	}

	message := dns.DNSMessage{
		Header: dns.DNSHeader{
			ID:            cfg.ID,
			Response:      true,
			QuestionCount: 1,
		},
		Questions: []dns.DNSQuestion{
			{Name: cfg.Domain, Type: respType, Class: respClass},
		},
	}

	return message.ToBytes()
}

// logPacket emits the three wire renderings of a packet at debug level.
func logPacket(direction string, data []byte) {
	log.Debug().
		Str("packet", direction).
		Str("binary", dns.BinaryString(data)).
		Str("hex", dns.HexString(data)).
		Str("decimal", dns.DecimalString(data)).
		Msg("Packet dump")
}

// Close releases the UDP socket. Closing twice is an error.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("server already closed")
	}
	s.closed = true
	s.mu.Unlock()

	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("failed to close UDP connection: %w", err)
	}

	return nil
}
