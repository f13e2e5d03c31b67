// Command clubhub-keyhash prints the bcrypt hash to put in admin_key_hash
// (or CLUBHUB_ADMIN_KEY_HASH) for a chosen admin key.
//
//	echo -n 'the-admin-key' | clubhub-keyhash
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dalemusser/clubhub/internal/app/system/adminauth"
)

func main() {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatal("read admin key from stdin: ", err)
	}
	key := strings.TrimRight(line, "\r\n")
	if len(key) < 16 {
		log.Fatal("admin key must be at least 16 characters")
	}

	hash, err := adminauth.HashKey(key)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
}
