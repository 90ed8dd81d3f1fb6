package commands

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/rsa"
	"github.com/SlightlyLoony/rsa-vault/internal/infrastructure/cryptography"
	"github.com/SlightlyLoony/rsa-vault/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	rsaProcessor rsa.Processor
	logger       logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging and an RSA processor.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &RSACommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// GenerateRSAKeysCmd generates an RSA key pair and persists it in a selected directory
func (commandHandler *RSACommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: %v", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: %v", err)
		return
	}
	encryptExponent, err := cmd.Flags().GetInt64("encrypt-exponent")
	if err != nil {
		commandHandler.logger.Error("invalid encrypt-exponent flag: %v", err)
		return
	}
	signExponent, err := cmd.Flags().GetInt64("sign-exponent")
	if err != nil {
		commandHandler.logger.Error("invalid sign-exponent flag: %v", err)
		return
	}

	uniqueID := uuid.New()

	keyPair, err := cryptography.GenerateKeyPair(rand.Reader, keySize,
		encryptExponent, signExponent,
		cryptography.MinModulusBits, cryptography.MaxModulusBits)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	privateKeyFilePath := fmt.Sprintf("%s/%s-private-key.txt", keyDir, uniqueID.String())

	err = commandHandler.rsaProcessor.SavePrivateKeyToFile(keyPair.Private, privateKeyFilePath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	publicKeyFilePath := fmt.Sprintf("%s/%s-public-key.txt", keyDir, uniqueID.String())
	err = commandHandler.rsaProcessor.SavePublicKeyToFile(keyPair.Public, publicKeyFilePath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}
}

// EncryptRSACmd encrypts a file using RSAES-OAEP under an optional label
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: %v", err)
		return
	}
	label, err := cmd.Flags().GetString("label")
	if err != nil {
		commandHandler.logger.Error("invalid label flag: %v", err)
		return
	}

	publicKey, err := commandHandler.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	encryptedData, err := commandHandler.rsaProcessor.Encrypt(plainText, []byte(label), publicKey)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	err = os.WriteFile(outputFile, encryptedData, 0600)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptRSACmd decrypts an OAEP-encrypted file
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: %v", err)
		return
	}
	label, err := cmd.Flags().GetString("label")
	if err != nil {
		commandHandler.logger.Error("invalid label flag: %v", err)
		return
	}

	privateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	decryptedData, err := commandHandler.rsaProcessor.Decrypt(encryptedData, []byte(label), privateKey)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	err = os.WriteFile(outputFile, decryptedData, 0600)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// SignRSACmd signs a file using RSA and saves the signature
func (commandHandler *RSACommandHandler) SignRSACmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: %v", err)
		return
	}

	// Read private key
	privateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	// Read data to sign
	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	// Sign the data
	signature, err := commandHandler.rsaProcessor.Sign(data, privateKey)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	// Save the signature to a file
	err = os.WriteFile(signatureFilePath, signature, 0600)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Signature saved at ", signatureFilePath)
}

// VerifyRSACmd verifies a signature using RSA
func (commandHandler *RSACommandHandler) VerifyRSACmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: %v", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: %v", err)
		return
	}

	// Read public key
	publicKey, err := commandHandler.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	// Read data and signature
	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	signature, err := os.ReadFile(filepath.Clean(signatureFilePath))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	// Verify the signature
	valid, err := commandHandler.rsaProcessor.Verify(data, signature, publicKey)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	if valid {
		commandHandler.logger.Info("Signature is valid")
	} else {
		commandHandler.logger.Error("Signature is invalid")
	}
}

// InspectRSAKeyCmd prints the parameters of a tagged-string key file
func (commandHandler *RSACommandHandler) InspectRSAKeyCmd(cmd *cobra.Command, _ []string) {
	keyPath, err := cmd.Flags().GetString("key-file")
	if err != nil {
		commandHandler.logger.Error("invalid key-file flag: %v", err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(keyPath))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	encoded := string(data)

	if privateKey, err := rsa.ParsePrivateKey(encoded); err == nil {
		commandHandler.logger.Info("Private key: modulus ", privateKey.M.N.BitLen(),
			" bits, p ", privateKey.M.P.BitLen(), " bits, q ", privateKey.M.Q.BitLen(), " bits")
		return
	}

	publicKey, err := rsa.ParsePublicKey(encoded)
	if err != nil {
		commandHandler.logger.Error("not a recognizable key file: %v", err)
		return
	}
	commandHandler.logger.Info("Public key: modulus ", publicKey.N.BitLen(),
		" bits, encryption exponent ", publicKey.EEncrypt.String(),
		", signing exponent ", publicKey.ESign.String())
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler %w", err)
	}

	var generateRSAKeysCmd = &cobra.Command{
		Use:   "generate-rsa-keys",
		Short: "Generate RSA keys",
		Run:   handler.GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().IntP("key-size", "", 2048, "RSA modulus size in bits (default 2048)")
	generateRSAKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the RSA keys")
	generateRSAKeysCmd.Flags().Int64P("encrypt-exponent", "", cryptography.DefaultEncryptExponent, "Public encryption exponent")
	generateRSAKeysCmd.Flags().Int64P("sign-exponent", "", cryptography.DefaultSignExponent, "Public signature-verification exponent")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var encryptRSAFileCmd = &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt a file using RSA",
		Run:   handler.EncryptRSACmd,
	}
	encryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptRSAFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key")
	encryptRSAFileCmd.Flags().StringP("label", "", "", "Optional OAEP label bound to the ciphertext")
	rootCmd.AddCommand(encryptRSAFileCmd)

	var decryptRSAFileCmd = &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt a file using RSA",
		Run:   handler.DecryptRSACmd,
	}
	decryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptRSAFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key")
	decryptRSAFileCmd.Flags().StringP("label", "", "", "OAEP label the ciphertext was encrypted under")
	rootCmd.AddCommand(decryptRSAFileCmd)

	var signRSACmd = &cobra.Command{
		Use:   "sign-rsa",
		Short: "Sign a file using RSA",
		Run:   handler.SignRSACmd,
	}
	signRSACmd.Flags().StringP("input-file", "", "", "Path to file which needs to be signed")
	signRSACmd.Flags().StringP("output-file", "", "", "Path to signature file")
	signRSACmd.Flags().StringP("private-key", "", "", "Path to RSA private key")
	rootCmd.AddCommand(signRSACmd)

	var verifyRSACmd = &cobra.Command{
		Use:   "verify-rsa",
		Short: "Verify a file signature using RSA",
		Run:   handler.VerifyRSACmd,
	}
	verifyRSACmd.Flags().StringP("input-file", "", "", "Path to signed file")
	verifyRSACmd.Flags().StringP("signature-file", "", "", "Path to signature file")
	verifyRSACmd.Flags().StringP("public-key", "", "", "Path to RSA public key")
	rootCmd.AddCommand(verifyRSACmd)

	var inspectRSAKeyCmd = &cobra.Command{
		Use:   "inspect-rsa-key",
		Short: "Print the parameters of an RSA key file",
		Run:   handler.InspectRSAKeyCmd,
	}
	inspectRSAKeyCmd.Flags().StringP("key-file", "", "", "Path to RSA key file")
	rootCmd.AddCommand(inspectRSAKeyCmd)

	return nil
}
