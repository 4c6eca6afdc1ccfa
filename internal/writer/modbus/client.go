// internal/writer/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/smcctl/internal/status"
)

// BlockClient mirrors controller telemetry blocks into one Modbus TCP endpoint.
//
// Controller i owns holding registers
// BaseAddress + i*status.SlotsPerController onward. Every write carries the
// full encoded block, valid mask included, so a reader never sees a block
// half old and half new.
type BlockClient struct {
	cfg     Config
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

type Config struct {
	Endpoint    string
	UnitID      uint8
	BaseAddress uint16
	Timeout     time.Duration
}

// Dial connects to the endpoint. The unit id is fixed for the connection.
func Dial(cfg Config) (*BlockClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("writer modbus: connect %s: %w", cfg.Endpoint, err)
	}

	return &BlockClient{
		cfg:     cfg,
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

func (c *BlockClient) Close() error {
	return c.handler.Close()
}

// BlockAddress returns the first register of controller index.
// The whole block must fit below 0x10000.
func BlockAddress(base uint16, index int) (uint16, error) {
	if index < 0 {
		return 0, fmt.Errorf("writer modbus: negative controller index %d", index)
	}
	start := int(base) + index*status.SlotsPerController
	if start+status.SlotsPerController-1 > 0xFFFF {
		return 0, fmt.Errorf("writer modbus: controller %d block at %d overflows register space", index, start)
	}
	return uint16(start), nil
}

// WriteController encodes s and writes its block in one FC 16 request.
func (c *BlockClient) WriteController(s status.Snapshot) error {
	addr, err := BlockAddress(c.cfg.BaseAddress, s.Index)
	if err != nil {
		return err
	}

	regs := status.Encode(s)

	if _, err := c.client.WriteMultipleRegisters(addr, uint16(len(regs)), packRegisters(regs)); err != nil {
		return fmt.Errorf("writer modbus: unit=%d controller=%d addr=%d: %w", c.cfg.UnitID, s.Index, addr, err)
	}
	return nil
}

// Modbus register memory order (BIG-ENDIAN)
func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
