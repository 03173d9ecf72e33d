// Command wireprobe builds, parses, and diagnoses DNS/mDNS/LLMNR wire
// packets. It exists to exercise the codec from the command line; it is not
// a resolver, a cache, or a server.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/packetforge/dns-codec/internal/dns/common/log"
	"github.com/packetforge/dns-codec/internal/dns/config"
	"github.com/packetforge/dns-codec/internal/dns/domain"
	"github.com/packetforge/dns-codec/internal/dns/repos/fixtures"
	"github.com/packetforge/dns-codec/internal/dns/wire"
)

const version = "0.1.0-dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	var (
		name       = flag.String("name", "example.com.", "owner name to query")
		rrtype     = flag.String("type", "A", "record type to query")
		protoFlag  = flag.String("proto", cfg.Protocol, "protocol: dns, mdns, or llmnr")
		decodeHex  = flag.String("decode", "", "hex-encoded packet to ingest and diagnose instead of building one")
		store      = flag.String("store", "", "path to a fixtures database")
		saveAs     = flag.String("save", "", "name to save the built/decoded packet under (requires -store)")
		loadAs     = flag.String("load", "", "name to load a packet from instead of building one (requires -store)")
		mtu        = flag.Int("mtu", cfg.DefaultMTU, "MTU used to size the outgoing packet buffer")
	)
	flag.Parse()

	proto, err := parseProtocol(*protoFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"version":  version,
		"env":      cfg.Env,
		"protocol": proto.String(),
	}, "starting wireprobe")

	var fixtureStore *fixtures.Store
	if *store != "" {
		fixtureStore, err = fixtures.New(*store)
		if err != nil {
			log.Fatal(map[string]any{"error": err, "path": *store}, "failed to open fixtures store")
		}
		defer fixtureStore.Close()
	}

	var raw []byte
	switch {
	case *loadAs != "":
		if fixtureStore == nil {
			log.Fatal(nil, "-load requires -store")
		}
		var loadedProto wire.Protocol
		loadedProto, raw, err = fixtureStore.Load(*loadAs)
		if err != nil {
			log.Fatal(map[string]any{"error": err, "name": *loadAs}, "failed to load capture")
		}
		proto = loadedProto
	case *decodeHex != "":
		raw, err = hex.DecodeString(strings.TrimSpace(*decodeHex))
		if err != nil {
			log.Fatal(map[string]any{"error": err}, "invalid hex input")
		}
	default:
		raw, err = buildQuery(proto, *mtu, *name, *rrtype)
		if err != nil {
			log.Fatal(map[string]any{"error": err}, "failed to build query packet")
		}
	}

	p := wire.New(proto, *mtu)
	if err := p.Ingest(raw); err != nil {
		log.Fatal(map[string]any{"error": err}, "failed to ingest packet")
	}

	if err := p.Extract(); err != nil {
		log.Error(map[string]any{"error": err}, "packet failed extraction")
	} else {
		report(p)
	}

	_ = p.Diagnose()

	if *saveAs != "" {
		if fixtureStore == nil {
			log.Fatal(nil, "-save requires -store")
		}
		if err := fixtureStore.Save(*saveAs, proto, raw); err != nil {
			log.Fatal(map[string]any{"error": err, "name": *saveAs}, "failed to save capture")
		}
		log.Info(map[string]any{"name": *saveAs}, "capture saved")
	}

	fmt.Println(hex.EncodeToString(raw))
}

func parseProtocol(s string) (wire.Protocol, error) {
	switch strings.ToLower(s) {
	case "dns":
		return wire.ProtoDNS, nil
	case "mdns":
		return wire.ProtoMDNS, nil
	case "llmnr":
		return wire.ProtoLLMNR, nil
	default:
		return 0, fmt.Errorf("unknown protocol %q (want dns, mdns, or llmnr)", s)
	}
}

// buildQuery constructs a single-question query packet for name/rrtype.
func buildQuery(proto wire.Protocol, mtu int, name, rrtype string) ([]byte, error) {
	t := domain.RRTypeFromString(rrtype)
	if !t.IsValidQueryType() {
		return nil, fmt.Errorf("unsupported query type %q", rrtype)
	}

	p := wire.New(proto, mtu)
	q := domain.Question{Name: name, Type: t, Class: domain.RRClassIN}
	if err := p.AppendQuestion(q); err != nil {
		return nil, fmt.Errorf("append question: %w", err)
	}
	if err := p.ValidateQuery(); err != nil {
		return nil, fmt.Errorf("built an invalid query: %w", err)
	}
	return p.Serialize(), nil
}

func report(p *wire.Packet) {
	log.Info(map[string]any{
		"id":         p.ID(),
		"qr":         p.QR(),
		"opcode":     p.Opcode(),
		"rcode":      p.RCode(),
		"questions":  len(p.Questions()),
		"answers":    len(p.Answers()),
		"authority":  len(p.Authority()),
		"additional": len(p.Additional()),
		"has_opt":    p.OPT() != nil,
	}, "packet extracted")

	for _, q := range p.Questions() {
		log.Info(map[string]any{"name": q.Name, "type": q.Type.String(), "class": q.Class.String()}, "question")
	}
	for _, rr := range p.Answers() {
		log.Info(map[string]any{"name": rr.Name, "type": rr.Type.String(), "ttl": rr.TTL}, "answer")
	}
}
